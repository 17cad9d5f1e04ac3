package handlers_fiber

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"whatsapp-crm/internal/dto"
	"whatsapp-crm/internal/entities"
	"whatsapp-crm/internal/gate"
	"whatsapp-crm/internal/mapper"
	"whatsapp-crm/internal/refresh"
	"whatsapp-crm/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/valyala/fasthttp"
)

// GetLeadsStream pushes a lead snapshot every refresh interval as
// server-sent events until the client goes away or the server stops.
// Every tick after the first re-runs the gate with the session that opened
// the stream; once it no longer grants the same client, a final redirect
// event is sent and the stream ends.
func (h *Handler) GetLeadsStream(c *fiber.Ctx) error {
	id, err := clientID(c)
	if err != nil {
		return writeError(c, err)
	}
	// fiber reuses request buffers once the handler returns.
	filter := leadFilter(c)
	filter.Status = entities.LeadStatus(utils.CopyString(string(filter.Status)))
	filter.Source = utils.CopyString(filter.Source)
	filter.Query = utils.CopyString(filter.Query)
	if filter.Status != "" && !filter.Status.Valid() {
		return writeError(c, fmt.Errorf("%w: unknown lead status %q", entities.ErrInvalidArgument, filter.Status))
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	token := utils.CopyString(middleware.SessionToken(c, h.opts.AccessCookie))
	path := utils.CopyString(c.Path())

	log := h.log.With("client_id", id)
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		ctx, cancel := context.WithCancel(h.ctx)
		defer cancel()

		first := true
		err := refresh.Run(ctx, h.opts.RefreshInterval, func(ctx context.Context) error {
			if !first {
				if location, ok := h.streamAccess(ctx, token, path, id); !ok {
					log.Infow("lead stream access revoked", "location", location)
					_ = writeEvent(w, "redirect", dto.StreamRedirect{Location: location})
					cancel()
					return nil
				}
			}
			first = false

			leads, err := h.uc.Leads(ctx, id, filter)
			if err != nil {
				if werr := writeEvent(w, "error", errorResponse(dto.Internal, "failed to refresh leads", true)); werr != nil {
					cancel()
				}
				return err
			}
			snapshot := dto.LeadSnapshot{Leads: mapper.ToLeads(leads), RefreshedAt: time.Now().UTC()}
			if err := writeEvent(w, "leads", snapshot); err != nil {
				cancel()
				return err
			}
			return nil
		}, refresh.WithErrorHandler(func(err error) {
			log.Warnw("lead refresh failed", "error", err)
		}))
		log.Debugw("lead stream closed", "reason", err)
	}))
	return nil
}

// streamAccess re-evaluates the gate for an open stream. A decision that
// still allows access but resolves another client also ends the stream.
func (h *Handler) streamAccess(ctx context.Context, token, path, clientID string) (string, bool) {
	d := h.gate.Evaluate(ctx, token, path)
	if !d.Allowed() {
		return d.Location, false
	}
	if p, ok := d.Principal(); !ok || p.ClientID != clientID {
		return gate.HomePath, false
	}
	return "", true
}

func writeEvent(w *bufio.Writer, event string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	return w.Flush()
}
