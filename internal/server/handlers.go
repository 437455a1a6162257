package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/goliatone/go-contacts/pkg/contact"
	"github.com/goliatone/go-contacts/pkg/controller"
	"github.com/goliatone/go-contacts/pkg/render"
)

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writePage(w, r, http.StatusOK, nil)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writeList(w, r, http.StatusOK)
}

// handleSubmit applies the posted form and stores it: an update when the
// hidden id is set, an add otherwise. A failed submit re-renders the page
// with the user's input and the mapped messages.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctrl.Form().Submit(r.PostForm)
	record, err := s.ctrl.Submit()
	if err != nil {
		s.logger.Warn("submit failed", zap.Error(err))
		s.writePage(w, r, statusFor(err), render.MapError(err))
		return
	}
	s.logger.Debug("contact stored", zap.String("id", record.ID))
	s.redirectHome(w, r)
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.ctrl.Edit(r.PathValue("id")); err != nil {
		s.logger.Warn("edit failed", zap.String("id", r.PathValue("id")), zap.Error(err))
		s.writePage(w, r, statusFor(err), render.MapError(err))
		return
	}
	s.writePage(w, r, http.StatusOK, nil)
}

// handleDelete removes one entry. Fragment requests get 204 when the entry
// can simply be dropped from the displayed list, or the full list when it is
// now empty or the id was already gone.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := r.PathValue("id")
	result, err := s.ctrl.Delete(id)
	if err != nil {
		s.logger.Warn("delete failed", zap.String("id", id), zap.Error(err))
		s.writePage(w, r, statusFor(err), render.MapError(err))
		return
	}
	if !result.Removed {
		s.logger.Debug("delete of unknown contact ignored", zap.String("id", id))
	}

	if r.Header.Get(FragmentHeader) == "" {
		s.redirectHome(w, r)
		return
	}
	if result.Removed && !result.NeedsFullRender {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.writeList(w, r, http.StatusOK)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctrl.Cancel()
	s.redirectHome(w, r)
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	if len(s.openapi) == 0 {
		http.Error(w, "openapi document not configured", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(s.openapi)
}

func (s *Server) pageView() render.PageView {
	key := render.KeyModeAdd
	if s.ctrl.Mode() == controller.ModeEdit {
		key = render.KeyModeUpdate
	}
	return render.PageView{
		Mode:  string(s.ctrl.Mode()),
		Label: s.options.Text(key),
		Form:  render.NewFormView(s.ctrl.Form()),
		List:  render.NewListView(s.ctrl.Records()),
	}
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, status int, messages []string) {
	options := s.options
	options.Messages = render.MergeFormErrors(options.Messages, messages...)

	body, err := s.renderer.RenderPage(r.Context(), s.pageView(), options)
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	s.write(w, status, body)
}

func (s *Server) writeList(w http.ResponseWriter, r *http.Request, status int) {
	body, err := s.renderer.RenderList(r.Context(), render.NewListView(s.ctrl.Records()), s.options)
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	s.write(w, status, body)
}

func (s *Server) write(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", s.renderer.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *Server) redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, s.basePath+"/", http.StatusSeeOther)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logger.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	http.Error(w, http.StatusText(status), status)
}

func statusFor(err error) int {
	if errors.Is(err, contact.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
