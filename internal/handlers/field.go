package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/memefield/internal/command"
	"github.com/vancomm/memefield/internal/config"
	"github.com/vancomm/memefield/internal/field"
	"github.com/vancomm/memefield/internal/middleware"
	"github.com/vancomm/memefield/internal/render/raster"
	"github.com/vancomm/memefield/internal/session"
)

const maxBatchBytes = 64 << 10

var (
	errMissingToken = errors.New("missing field token")
	errInvalidID    = errors.New("invalid field id")
)

type FieldHandler struct {
	log          logrus.FieldLogger
	store        *session.Store
	jwt          *config.JWT
	ws           *config.WebSocket
	defaultMines int
}

func NewFieldHandler(
	log logrus.FieldLogger,
	store *session.Store,
	jwt *config.JWT,
	ws *config.WebSocket,
	defaultMines int,
) *FieldHandler {
	return &FieldHandler{
		log:          log,
		store:        store,
		jwt:          jwt,
		ws:           ws,
		defaultMines: defaultMines,
	}
}

// lookup resolves the {id} path value, writing the error response itself when
// it fails.
func (h FieldHandler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		sendError(w, h.log, http.StatusBadRequest, errInvalidID)
		return nil, false
	}
	s, err := h.store.Get(id)
	if err != nil {
		sendError(w, h.log, http.StatusNotFound, err)
		return nil, false
	}
	return s, true
}

func (h FieldHandler) authorize(w http.ResponseWriter, r *http.Request, s *session.Session) bool {
	token, ok := middleware.TokenFrom(r.Context())
	if !ok {
		sendError(w, h.log, http.StatusUnauthorized, errMissingToken)
		return false
	}
	if err := h.jwt.Verify(token, s.ID); err != nil {
		h.log.WithError(err).WithField("field_id", s.ID).Debug("rejected field token")
		sendError(w, h.log, http.StatusForbidden, err)
		return false
	}
	return true
}

func (h FieldHandler) Create(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateFieldDTO(r.URL.Query())
	if err != nil {
		sendError(w, h.log, http.StatusBadRequest, err)
		return
	}
	nMines := h.defaultMines
	if dto.MineCount != nil {
		nMines = *dto.MineCount
	}

	s, err := h.store.Create(nMines)
	if errors.Is(err, field.ErrMineCount) {
		sendError(w, h.log, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to create field")
		return
	}

	token, err := h.jwt.Sign(s.ID)
	if err != nil {
		h.store.Delete(s.ID)
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to sign field token")
		return
	}

	h.log.WithFields(logrus.Fields{
		"field_id": s.ID,
		"mines":    nMines,
	}).Debug("created field")

	resp := snapshot(s)
	resp.Token = token
	sendJSONOrLog(w, h.log, http.StatusCreated, resp)
}

func (h FieldHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, h.log, http.StatusOK, snapshot(s))
}

func (h FieldHandler) Image(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var surface *raster.Surface
	s.View(func(f *field.Field) {
		surface = raster.Render(f)
	})

	var buf bytes.Buffer
	if err := surface.EncodePNG(&buf); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to encode field image")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := buf.WriteTo(w); err != nil {
		h.log.WithError(err).Warn("unable to send field image")
	}
}

func (h FieldHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	h.click(w, r, command.Reveal)
}

func (h FieldHandler) Flag(w http.ResponseWriter, r *http.Request) {
	h.click(w, r, command.Flag)
}

func (h FieldHandler) click(w http.ResponseWriter, r *http.Request, op command.Op) {
	s, ok := h.lookup(w, r)
	if !ok || !h.authorize(w, r, s) {
		return
	}

	pos, err := ParsePosition(r.URL.Query())
	if err != nil {
		sendError(w, h.log, http.StatusBadRequest, err)
		return
	}

	c := command.Command{Op: op, Pos: image.Pt(pos.X, pos.Y)}
	err = s.Do(func(f *field.Field) error {
		return command.Execute(f, c)
	})
	if err != nil {
		sendError(w, h.log, http.StatusBadRequest, err)
		return
	}

	h.log.WithFields(logrus.Fields{
		"field_id": s.ID,
		"command":  c.String(),
	}).Debug("click")

	sendJSONOrLog(w, h.log, http.StatusOK, snapshot(s))
}

// Batch accepts newline-separated commands in the request body:
//
//	r x y // reveal click at pixel x:y
//	f x y // flag click at pixel x:y
//
// Commands run in order. The first malformed or out-of-bounds command stops the
// batch with a 400 carrying its line number; earlier commands stay applied.
func (h FieldHandler) Batch(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok || !h.authorize(w, r, s) {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBatchBytes))
	if err != nil {
		status := http.StatusBadRequest
		if errors.As(err, new(*http.MaxBytesError)) {
			status = http.StatusRequestEntityTooLarge
		}
		sendError(w, h.log, status, err)
		return
	}

	if payload, failed := h.run(s, string(body)); failed {
		sendJSONOrLog(w, h.log, http.StatusBadRequest, payload)
		return
	}

	sendJSONOrLog(w, h.log, http.StatusOK, snapshot(s))
}

func (h FieldHandler) run(s *session.Session, text string) (errorPayload, bool) {
	var line int
	err := s.Do(func(f *field.Field) error {
		var err error
		line, err = command.Run(f, text)
		return err
	})
	if err != nil {
		return errorPayload{Error: err.Error(), Line: &line}, true
	}
	return errorPayload{}, false
}

func (h FieldHandler) Delete(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok || !h.authorize(w, r, s) {
		return
	}
	if !h.store.Delete(s.ID) {
		sendError(w, h.log, http.StatusNotFound, fmt.Errorf("%w: %s", session.ErrNotFound, s.ID))
		return
	}
	h.log.WithField("field_id", s.ID).Debug("deleted field")
	w.WriteHeader(http.StatusNoContent)
}
