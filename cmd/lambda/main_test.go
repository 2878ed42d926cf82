package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srcgen/srcgen/internal/result"
)

const widgetHCL = `
metadata {
  version = "1.0"
  name    = "parts"
}

type "Widget" {
  namespace = "Acme.Parts"
  doc       = "A widget."

  property "Name" {
    type = "string"
  }
}
`

func decode(t *testing.T, resp APIGatewayResponse) LambdaResponse {
	t.Helper()
	var out LambdaResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &out))
	assert.Equal(t, resp.StatusCode, out.StatusCode)
	return out
}

func TestHandlerHCL(t *testing.T) {
	resp, err := handler(context.Background(), LambdaEvent{
		Body:     base64.StdEncoding.EncodeToString([]byte(widgetHCL)),
		IsBase64: true,
		Format:   "hcl",
	})
	require.NoError(t, err)
	out := decode(t, resp)
	require.True(t, out.Success, "%v", out.Diagnostics)
	require.Contains(t, out.Files, "Generated.cs")

	text, err := base64.StdEncoding.DecodeString(out.Files["Generated.cs"])
	require.NoError(t, err)
	assert.Contains(t, string(text), "namespace Acme.Parts\n{\n")
	assert.Contains(t, string(text), "public string Name { get; set; }")
}

func TestHandlerJSONSplit(t *testing.T) {
	body := `{"metadata": {"version": "1.0"}, "types": [
		{"name": "Color", "kind": "enum", "doc": "Colors.", "members": [{"name": "Red"}, {"name": "Green"}]},
		{"name": "Point", "kind": "record_struct", "doc": "A point.", "parameters": [{"name": "X", "type": "int"}]}
	]}`
	resp, err := handler(context.Background(), LambdaEvent{Body: body, SplitFiles: true})
	require.NoError(t, err)
	out := decode(t, resp)
	require.True(t, out.Success, "%v", out.Diagnostics)
	assert.Len(t, out.Files, 2)
	assert.Contains(t, out.Files, "Color.cs")
	assert.Contains(t, out.Files, "Point.cs")
}

func TestHandlerErrors(t *testing.T) {
	tests := []struct {
		name   string
		event  LambdaEvent
		status int
	}{
		{"bad base64", LambdaEvent{Body: "!!", IsBase64: true}, http.StatusBadRequest},
		{"bad json", LambdaEvent{Body: "{"}, http.StatusBadRequest},
		{"invalid manifest", LambdaEvent{Body: `{"metadata": {}, "types": []}`}, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := handler(context.Background(), tt.event)
			require.NoError(t, err)
			out := decode(t, resp)
			assert.Equal(t, tt.status, out.StatusCode)
			assert.False(t, out.Success)
			assert.True(t, result.HasErrors(out.Diagnostics))
		})
	}
}
