package handler

import (
	"context"
	"io"

	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/casting"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/model"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/promotion"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/store"
	"github.com/Perfectmodels/perfect-model-hub-sub001/pkg/mailer"
	"github.com/Perfectmodels/perfect-model-hub-sub001/pkg/mailer/templates"
)

// SnapshotReader is the read side of the application store.
type SnapshotReader interface {
	Current() *store.Snapshot
	Initialized() bool
}

// Gateway is the store's narrow write surface.
type Gateway interface {
	SnapshotReader
	SaveModel(ctx context.Context, m *model.Model) error
	SaveCastingApplication(ctx context.Context, a *casting.Application) error
	ReplaceSnapshot(snap *store.Snapshot)
}

// Promoter runs the casting-to-model promotion workflow.
type Promoter interface {
	Promote(ctx context.Context, app casting.Application, snap *store.Snapshot) (*promotion.Result, error)
}

// RecordWriter covers the small collections with no typed repository.
type RecordWriter interface {
	UpsertRecord(ctx context.Context, table string, record map[string]any) error
	DeleteRecord(ctx context.Context, table, id string) error
}

// Uploader stores an object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, src io.Reader, bucket, folder, filename string) (string, error)
}

// Mailer sends the transactional receipts.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) *mailer.EmailResult
	SendTemplate(ctx context.Context, to, templateName string, data templates.Context) *mailer.EmailResult
}
