// Package images implements the Lambda-backed image proxy. Clients never see
// the ImgBB API key; they call these functions with a session token and the
// proxy performs the upload or deletion on their behalf.
package images

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sewalink/sewalink-functions/pkg/api"
	"github.com/sewalink/sewalink-functions/pkg/imgbb"
)

// ImagesHandler holds the dependencies for the image proxy functions.
type ImagesHandler struct {
	Client *imgbb.Client
	Logger *slog.Logger
}

// NewImagesHandler creates a new ImagesHandler.
func NewImagesHandler(client *imgbb.Client, logger *slog.Logger) *ImagesHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImagesHandler{Client: client, Logger: logger}
}

// Upload handles an authenticated image upload request.
func (h *ImagesHandler) Upload(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	callerID := callerID(request)
	if callerID == "" {
		return errorResponse(http.StatusUnauthorized, "unauthenticated", "You must be logged in to upload images"), nil
	}

	var body api.UploadImageRequest
	if err := json.Unmarshal([]byte(request.Body), &body); err != nil {
		return errorResponse(http.StatusBadRequest, "invalid-argument", "Invalid request body"), nil
	}
	if body.ImageBase64 == "" {
		return errorResponse(http.StatusBadRequest, "invalid-argument", "No image provided"), nil
	}

	result, err := h.Client.Upload(ctx, body.ImageBase64, body.FileName)
	if err != nil {
		h.Logger.Error("image upload failed", "caller", callerID, "error", err)
		return errorResponse(http.StatusInternalServerError, "internal", err.Error()), nil
	}

	h.Logger.Info("image uploaded", "caller", callerID, "url", result.Url)
	return jsonResponse(http.StatusOK, api.UploadImageResponse{
		Success:    true,
		Url:        result.Url,
		DisplayUrl: result.DisplayUrl,
		DeleteUrl:  result.DeleteUrl,
		ThumbUrl:   result.ThumbUrl,
	}), nil
}

// Delete handles an authenticated image deletion request.
func (h *ImagesHandler) Delete(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	callerID := callerID(request)
	if callerID == "" {
		return errorResponse(http.StatusUnauthorized, "unauthenticated", "You must be logged in to delete images"), nil
	}

	var body api.DeleteImageRequest
	if err := json.Unmarshal([]byte(request.Body), &body); err != nil {
		return errorResponse(http.StatusBadRequest, "invalid-argument", "Invalid request body"), nil
	}
	if body.DeleteUrl == "" && body.DeleteHash == "" {
		return errorResponse(http.StatusBadRequest, "invalid-argument", "No delete identifier provided"), nil
	}

	// A hash alone is acknowledged without an upstream call: the image host
	// only supports deletion through the delete URL.
	if body.DeleteUrl != "" {
		if err := h.Client.Delete(ctx, body.DeleteUrl); err != nil {
			h.Logger.Error("image delete failed", "caller", callerID, "error", err)
			return errorResponse(http.StatusInternalServerError, "internal", err.Error()), nil
		}
	}

	h.Logger.Info("image deleted", "caller", callerID)
	return jsonResponse(http.StatusOK, api.DeleteImageResponse{Success: true}), nil
}

// callerID resolves the authenticated user from the gateway authorizer
// claims, falling back to the x-user-id header for deployments that
// authenticate at the edge.
func callerID(request events.APIGatewayProxyRequest) string {
	if claims, ok := request.RequestContext.Authorizer["claims"].(map[string]interface{}); ok {
		if sub, ok := claims["sub"].(string); ok && sub != "" {
			return sub
		}
	}
	if id := request.Headers["x-user-id"]; id != "" {
		return id
	}
	return request.Headers["X-User-Id"]
}

func jsonResponse(status int, body any) events.APIGatewayProxyResponse {
	payload, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(payload),
	}
}

func errorResponse(status int, code, message string) events.APIGatewayProxyResponse {
	return jsonResponse(status, api.Error{Code: code, Message: message})
}
