// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"maps"
	"net/http"
	"strconv"
	"strings"
)

// Protocol is a wire protocol that error responses are rendered for.
//
// A protocol is a marker type: [Render] and [*Handler] are parameterized
// over it, so that a rejection can implement [IntoResponse] for some
// protocols and fall back to the generic rendering for the others.
type Protocol interface {
	// ProtocolName returns the protocol name (e.g., "restJson1").
	ProtocolName() string

	// RenderError builds the error response of the protocol.
	RenderError(status int, errType, message string) *Response
}

// IntoResponse is implemented by rejections and errors rendering their
// own response for protocol P.
type IntoResponse[P Protocol] interface {
	IntoResponse(proto P) *Response
}

// Render converts err into the error response of proto.
//
// Render walks the chain of err using [errors.As], so a tuple rejection
// renders as the member rejection it wraps. The first [IntoResponse] found
// in the chain builds the response. Otherwise, the status code comes from
// [StatusCoder], the error type from [ErrorTyper], and extra headers from
// [ResponseHeaderer]. Without a [StatusCoder], the response is a 500
// internal failure that does not disclose the error message.
func Render[P Protocol](proto P, err error) *Response {
	var custom IntoResponse[P]
	if errors.As(err, &custom) {
		return custom.IntoResponse(proto)
	}

	var coder StatusCoder
	if !errors.As(err, &coder) {
		return proto.RenderError(
			http.StatusInternalServerError,
			ErrorTypeInternalFailure,
			"internal server error",
		)
	}
	status := coder.StatusCode()

	message := err.Error()
	if cause, ok := coder.(error); ok {
		message = cause.Error()
	}

	errType := ErrorTypeInternalFailure
	var typer ErrorTyper
	if errors.As(err, &typer) {
		errType = typer.ErrorType()
	} else if status < http.StatusInternalServerError {
		errType = strings.ReplaceAll(http.StatusText(status), " ", "")
	}

	resp := proto.RenderError(status, errType, message)
	var headerer ResponseHeaderer
	if errors.As(err, &headerer) {
		for key, values := range headerer.ResponseHeader() {
			for _, value := range values {
				resp.Header.Add(key, value)
			}
		}
	}
	return resp
}

// Response is an HTTP response produced by an operation or by [Render].
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Header contains the response headers.
	Header http.Header

	// Body is the response body.
	Body []byte
}

// NewResponse creates a [*Response] with the given status, content type, and body.
func NewResponse(status int, contentType string, body []byte) *Response {
	header := http.Header{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &Response{StatusCode: status, Header: header, Body: body}
}

// Write sends the response using w.
func (r *Response) Write(w http.ResponseWriter) error {
	maps.Copy(w.Header(), r.Header)
	w.Header().Set("Content-Length", strconv.Itoa(len(r.Body)))
	w.WriteHeader(r.StatusCode)
	_, err := w.Write(r.Body)
	return err
}

// RestJSON1 is the restJson1 [Protocol].
//
// Error responses carry the error type in the X-Amzn-Errortype header
// and a JSON body containing the message.
type RestJSON1 struct{}

var _ Protocol = RestJSON1{}

// ProtocolName implements [Protocol].
func (RestJSON1) ProtocolName() string {
	return "restJson1"
}

type restJSON1Error struct {
	Message string `json:"message"`
}

// RenderError implements [Protocol].
func (RestJSON1) RenderError(status int, errType, message string) *Response {
	body, _ := json.Marshal(restJSON1Error{Message: message})
	resp := NewResponse(status, "application/json", body)
	resp.Header.Set("X-Amzn-Errortype", errType)
	return resp
}

// RestXML is the restXml [Protocol].
//
// Error responses carry an ErrorResponse XML document.
type RestXML struct{}

var _ Protocol = RestXML{}

// ProtocolName implements [Protocol].
func (RestXML) ProtocolName() string {
	return "restXml"
}

type restXMLErrorResponse struct {
	XMLName xml.Name `xml:"ErrorResponse"`
	Error   struct {
		Type    string `xml:"Type"`
		Code    string `xml:"Code"`
		Message string `xml:"Message"`
	} `xml:"Error"`
}

// RenderError implements [Protocol].
func (RestXML) RenderError(status int, errType, message string) *Response {
	var doc restXMLErrorResponse
	doc.Error.Type = "Sender"
	if status >= http.StatusInternalServerError {
		doc.Error.Type = "Receiver"
	}
	doc.Error.Code = errType
	doc.Error.Message = message
	body, _ := xml.Marshal(doc)
	return NewResponse(status, "application/xml", body)
}
