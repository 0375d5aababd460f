package api

import (
	"context"
	"net/url"

	"github.com/RoomLink-Network/client_layer/internal/domain/document"
	"github.com/RoomLink-Network/client_layer/internal/storage"
	"github.com/RoomLink-Network/client_layer/internal/transport"
)

// DocumentsClient is the document service module. Uploads go out as
// multipart form data with the file under the "document" field.
type DocumentsClient struct {
	t *transport.Client
}

var _ storage.DocumentStore = (*DocumentsClient)(nil)

func (c *DocumentsClient) UploadDocument(ctx context.Context, up storage.DocumentUpload) (document.Document, error) {
	file := transport.UploadFile{
		Field:       "document",
		FileName:    up.FileName,
		ContentType: up.ContentType,
		Data:        up.Data,
	}
	fields := map[string]string{
		"ownerId": up.OwnerID,
		"kind":    up.Kind,
	}
	var out document.Document
	if err := c.t.Upload(ctx, "/api/documents", file, fields, &out); err != nil {
		return document.Document{}, err
	}
	return out, nil
}

func (c *DocumentsClient) GetDocument(ctx context.Context, id string) (document.Document, error) {
	var out document.Document
	if err := c.t.Get(ctx, "/api/documents/"+url.PathEscape(id), &out, nil); err != nil {
		return document.Document{}, err
	}
	return out, nil
}

func (c *DocumentsClient) ListDocuments(ctx context.Context, ownerID string) ([]document.Document, error) {
	query := url.Values{}
	if ownerID != "" {
		query.Set("ownerId", ownerID)
	}
	var out []document.Document
	if err := c.t.Get(ctx, "/api/documents", &out, &transport.RequestOptions{Query: query}); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *DocumentsClient) VerifyDocument(ctx context.Context, id string) (document.Document, error) {
	var out document.Document
	if err := c.t.Post(ctx, "/api/documents/"+url.PathEscape(id)+"/verify", nil, &out); err != nil {
		return document.Document{}, err
	}
	return out, nil
}

func (c *DocumentsClient) RejectDocument(ctx context.Context, id, reason string) (document.Document, error) {
	body := map[string]string{"reason": reason}
	var out document.Document
	if err := c.t.Post(ctx, "/api/documents/"+url.PathEscape(id)+"/reject", body, &out); err != nil {
		return document.Document{}, err
	}
	return out, nil
}
