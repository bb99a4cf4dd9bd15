package handler

import (
	"context"
	"errors"
	"net/url"

	"github.com/amoylab/inventory/internal/common/cnst"
	"github.com/amoylab/inventory/internal/i18n"
	"github.com/amoylab/inventory/internal/inventory/database"
	"github.com/amoylab/inventory/internal/inventory/entity"
	"github.com/amoylab/inventory/internal/inventory/middleware"
	"github.com/amoylab/inventory/internal/upload"
	"github.com/amoylab/inventory/pkg/metrics"
	"github.com/amoylab/inventory/pkg/trace"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Inventory serves the page listing, edit, delete and form submission endpoints
type Inventory struct {
	logger   *zap.Logger
	db       database.Database
	registry *entity.Registry
	uploads  *upload.Store
	metrics  *metrics.Metrics
}

// NewInventory creates a new Inventory handler
func NewInventory(logger *zap.Logger, db database.Database, uploads *upload.Store, m *metrics.Metrics) *Inventory {
	return &Inventory{
		logger:   logger.Named("handler.inventory"),
		db:       db,
		registry: entity.NewRegistry(db),
		uploads:  uploads,
		metrics:  m,
	}
}

// HandleIndex lists the requested page. With edit it also returns the record
// to edit; with delete it removes the record first.
func (h *Inventory) HandleIndex(c *gin.Context) {
	ctx := c.Request.Context()
	page := c.Query("page")

	if raw := c.Query("delete"); raw != "" {
		kind, repo, err := h.lookup(c.Query("entity"))
		if err != nil {
			i18n.RespondWithError(c, err)
			return
		}
		id, err := entity.ParseID(raw)
		if err != nil {
			i18n.RespondWithError(c, err)
			return
		}

		scope := trace.Tracer(cnst.TraceHTTP).Start(ctx, cnst.SpanEntityDelete).
			WithAttrs(attribute.String("entity", kind.String()), attribute.Int64("id", int64(id)))
		err = repo.Delete(scope.Ctx, id)
		scope.Fail(err).End()
		h.metrics.EntityMutation(kind.String(), string(cnst.ActionDelete), err)
		if err != nil {
			h.respondError(c, err)
			return
		}
		h.logger.Info("record deleted", zap.String("entity", kind.String()), zap.Uint("id", id), h.actor(c))

		if page == "" {
			page = kind.Page()
		}
		h.renderPage(c, page, i18n.SuccessRecordDeleted, nil)
		return
	}

	if raw := c.Query("edit"); raw != "" {
		kind, repo, err := h.lookup(c.Query("entity"))
		if err != nil {
			i18n.RespondWithError(c, err)
			return
		}
		id, err := entity.ParseID(raw)
		if err != nil {
			i18n.RespondWithError(c, err)
			return
		}
		record, err := repo.Get(ctx, id)
		if err != nil {
			h.respondError(c, err)
			return
		}
		if page == "" {
			page = kind.Page()
		}
		h.renderPage(c, page, "", gin.H{"entity": kind.String(), "record": record})
		return
	}

	h.renderPage(c, page, "", nil)
}

// HandleSubmit creates a record, or updates one when the form carries an id
func (h *Inventory) HandleSubmit(c *gin.Context) {
	ctx := c.Request.Context()
	rawKind := c.PostForm("entity")
	kind, repo, err := h.lookup(rawKind)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	var id uint
	action := cnst.ActionCreate
	if raw := c.PostForm("id"); raw != "" {
		if id, err = entity.ParseID(raw); err != nil {
			i18n.RespondWithError(c, err)
			return
		}
		action = cnst.ActionUpdate
	}

	form := c.Request.PostForm
	if form == nil {
		form = url.Values{}
	}
	attachment := h.storeAttachment(c, kind)

	scope := trace.Tracer(cnst.TraceHTTP).Start(ctx, cnst.SpanEntitySave).
		WithAttrs(attribute.String("entity", kind.String()), attribute.String("action", string(action)))
	err = h.save(scope.Ctx, repo, action, &id, form, attachment)
	scope.Fail(err).End()
	h.metrics.EntityMutation(kind.String(), string(action), err)

	if err != nil {
		if attachment != nil {
			if rmErr := h.uploads.Remove(*attachment); rmErr != nil {
				h.logger.Warn("failed to remove orphaned upload", zap.String("path", *attachment), zap.Error(rmErr))
			}
		}
		h.respondError(c, err)
		return
	}

	h.logger.Info("record saved",
		zap.String("entity", kind.String()),
		zap.String("action", string(action)),
		zap.Uint("id", id),
		h.actor(c),
	)

	msgID := kind.CreatedMessage()
	if action == cnst.ActionUpdate {
		msgID = kind.UpdatedMessage()
	}
	h.renderPage(c, kind.Page(), msgID, gin.H{"entity": kind.String(), "id": id})
}

func (h *Inventory) save(ctx context.Context, repo entity.Repository, action cnst.ActionType, id *uint, form url.Values, attachment *string) error {
	if action == cnst.ActionUpdate {
		return repo.Update(ctx, *id, form, attachment)
	}
	newID, err := repo.Create(ctx, form, attachment)
	if err != nil {
		return err
	}
	*id = newID
	return nil
}

// storeAttachment saves the kind's upload field if present. Failures are
// logged and the record is saved without an attachment.
func (h *Inventory) storeAttachment(c *gin.Context, kind entity.Kind) *string {
	field := kind.UploadField()
	if field == "" {
		return nil
	}
	fh, err := upload.FromRequest(c.Request, field)
	if err != nil {
		h.logger.Warn("failed to read upload", zap.String("field", field), zap.Error(err))
		return nil
	}
	if fh == nil {
		return nil
	}
	stored, err := h.uploads.Save(fh, kind.UploadPrefix())
	if err != nil {
		h.logger.Warn("failed to store upload", zap.String("field", field), zap.String("filename", fh.Filename), zap.Error(err))
		return nil
	}
	return &stored
}

func (h *Inventory) lookup(raw string) (entity.Kind, entity.Repository, error) {
	kind, err := entity.ParseKind(raw)
	if err != nil {
		return 0, nil, i18n.ErrorUnknownEntity.WithParam("Entity", raw)
	}
	repo, err := h.registry.Repository(kind)
	if err != nil {
		return 0, nil, i18n.ErrorUnknownEntity.WithParam("Entity", raw)
	}
	return kind, repo, nil
}

// renderPage sends the list for page with the dropdown options its form needs
func (h *Inventory) renderPage(c *gin.Context, page, msgID string, extra gin.H) {
	ctx := c.Request.Context()
	kind, err := entity.ParsePage(page)
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrorUnknownEntity.WithParam("Entity", page))
		return
	}
	repo, err := h.registry.Repository(kind)
	if err != nil {
		h.respondError(c, err)
		return
	}

	items, err := repo.List(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	options, err := h.options(ctx, kind)
	if err != nil {
		h.respondError(c, err)
		return
	}

	payload := gin.H{
		"page":    kind.Page(),
		"items":   items,
		"options": options,
	}
	if user, ok := middleware.CurrentUser(c); ok {
		payload["user"] = user
	}
	for k, v := range extra {
		payload[k] = v
	}
	i18n.Success(msgID).WithPayload(payload).Send(c)
}

// options loads the dropdown lists the kind's form refers to
func (h *Inventory) options(ctx context.Context, kind entity.Kind) (gin.H, error) {
	out := gin.H{}
	if kind == entity.KindProduct || kind == entity.KindPurchase {
		suppliers, err := h.db.SupplierOptions(ctx)
		if err != nil {
			return nil, err
		}
		out["suppliers"] = suppliers
	}
	if kind == entity.KindPurchase || kind == entity.KindOrder {
		products, err := h.db.ProductOptions(ctx)
		if err != nil {
			return nil, err
		}
		out["products"] = products
	}
	if kind == entity.KindOrder {
		out["statuses"] = database.OrderStatuses
	}
	return out, nil
}

// respondError maps domain errors to notices; unexpected ones are logged
func (h *Inventory) respondError(c *gin.Context, err error) {
	var coded *i18n.ErrorWithCode
	switch {
	case errors.As(err, &coded):
		i18n.RespondWithError(c, coded)
	case errors.Is(err, database.ErrNotFound):
		i18n.RespondWithError(c, i18n.ErrorRecordNotFound)
	case errors.Is(err, database.ErrInUse):
		i18n.RespondWithError(c, i18n.ErrorEntityInUse)
	default:
		h.logger.Error("database operation failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrorDatabase)
	}
}

func (h *Inventory) actor(c *gin.Context) zap.Field {
	if user, ok := middleware.CurrentUser(c); ok {
		return zap.String("user", user.Username)
	}
	return zap.Skip()
}
