package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/srcgen/srcgen/internal/generator"
	_ "github.com/srcgen/srcgen/internal/handler" // register handlers
	"github.com/srcgen/srcgen/internal/logger"
	"github.com/srcgen/srcgen/internal/manifest"
	"github.com/srcgen/srcgen/internal/result"
)

// LambdaEvent is the invocation payload (e.g. from API Gateway).
type LambdaEvent struct {
	Body       string `json:"body"` // manifest (raw or base64 if isBase64)
	IsBase64   bool   `json:"isBase64,omitempty"`
	Format     string `json:"format,omitempty"` // json (default) or hcl
	SplitFiles bool   `json:"splitFiles,omitempty"`
	Header     string `json:"header,omitempty"`
}

// LambdaResponse is returned to the client (API Gateway).
type LambdaResponse struct {
	StatusCode  int                 `json:"statusCode"`
	Success     bool                `json:"success"`
	Diagnostics []result.Diagnostic `json:"diagnostics,omitempty"`
	Files       map[string]string   `json:"files,omitempty"` // filename -> content (base64)
}

// APIGatewayResponse is the shape expected by API Gateway proxy integration (body = JSON string).
type APIGatewayResponse struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body"`
}

func handler(ctx context.Context, event LambdaEvent) (APIGatewayResponse, error) {
	out := LambdaResponse{StatusCode: http.StatusOK}

	body := event.Body
	if event.IsBase64 {
		dec, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return fail(http.StatusBadRequest, "invalid base64 body: %v", err), nil
		}
		body = string(dec)
	}

	filename := "manifest.json"
	if event.Format == "hcl" {
		filename = "manifest.hcl"
	}
	m, err := manifest.Decode([]byte(body), filename)
	if err != nil {
		return fail(http.StatusBadRequest, "invalid manifest: %v", err), nil
	}

	opts := generator.DefaultOptions()
	opts.SplitFiles = event.SplitFiles
	opts.Format.Header = event.Header
	rep := generator.New(opts).Generate(m)
	logger.Default.InfoContext(ctx, "generated", "manifest", m.Metadata.Name,
		"success", rep.Success, "files", len(rep.Files), "diagnostics", len(rep.Diagnostics))

	out.Success = rep.Success
	out.Diagnostics = rep.Diagnostics
	if rep.Success && len(rep.Files) > 0 {
		out.Files = make(map[string]string, len(rep.Files))
		for name, content := range rep.Files {
			out.Files[name] = base64.StdEncoding.EncodeToString(content)
		}
	}
	if !rep.Success {
		out.StatusCode = http.StatusUnprocessableEntity
	}
	return wrap(out), nil
}

func fail(status int, format string, args ...any) APIGatewayResponse {
	return wrap(LambdaResponse{
		StatusCode:  status,
		Diagnostics: []result.Diagnostic{result.Errorf(result.CodeSchema, result.Location{}, format, args...)},
	})
}

func wrap(out LambdaResponse) APIGatewayResponse {
	bodyBytes, _ := json.Marshal(out)
	return APIGatewayResponse{
		StatusCode: out.StatusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(bodyBytes),
	}
}

func main() {
	lambda.Start(handler)
}
