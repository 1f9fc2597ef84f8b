// SPDX-License-Identifier: GPL-3.0-or-later

package extract_test

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/bassosimone/extract"
)

type createItem struct {
	Name string `json:"name" validate:"required"`
}

type listOptions struct {
	Limit int `query:"limit"`
}

type createItemInput = extract.Tuple2[createItem, extract.Tuple2[string, listOptions]]

// This example serves an operation whose input is a JSON body, a
// required header, and the query string.
func Example() {
	cfg := extract.NewConfig()
	logger := extract.DefaultSLogger()

	extractor := extract.Request2(
		extract.NewBody[createItem](cfg, logger),
		extract.Parts2(
			extract.Header{Name: "X-Tenant", Required: true},
			extract.NewQuery[listOptions](),
		),
	)
	op := extract.FuncAdapter[createItemInput, *extract.Response](
		func(ctx context.Context, input createItemInput) (*extract.Response, error) {
			body := fmt.Sprintf("%s/%s/%d", input.V2.V1, input.V1.Name, input.V2.V2.Limit)
			return extract.NewResponse(http.StatusCreated, "text/plain", []byte(body)), nil
		},
	)
	handler := extract.NewHandler(cfg, extract.RestJSON1{}, "CreateItem", extractor, op, logger)

	serve := func(tenant string) {
		req := httptest.NewRequest("POST", "/items?limit=10", strings.NewReader(`{"name":"widget"}`))
		req.Header.Set("Content-Type", "application/json")
		if tenant != "" {
			req.Header.Set("X-Tenant", tenant)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		fmt.Println(rec.Code, rec.Header().Get("X-Amzn-Errortype"), rec.Body.String())
	}

	serve("acme")
	serve("")

	// Output:
	// 201  acme/widget/10
	// 400 SerializationException {"message":"header X-Tenant: missing"}
}

// This example sends requests through an [*extract.EndpointTransport]
// targeting a mutable endpoint with a host prefix.
func ExampleEndpointTransport() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "%s %s", r.Method, r.URL.RequestURI())
	}))
	defer srv.Close()

	txp := extract.NewEndpointTransport(
		extract.NewConfig(),
		extract.NewStaticEndpointFunc(srv.URL+"/v1"),
		extract.DefaultSLogger(),
	)
	txp.Base = srv.Client().Transport
	client := &http.Client{Transport: txp}

	resp, err := client.Get("http://placeholder.invalid/items?page=2")
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(data))

	// Output:
	// GET /v1/items?page=2
}
