package notes

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/2beens/notesbox/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{
		store: store,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	// new-id goes first, otherwise {id} swallows it
	r.HandleFunc("/notes/new-id", handler.HandleNewID).Methods("GET", "OPTIONS").Name("new-note-id")
	r.HandleFunc("/notes", handler.HandleList).Methods("GET", "OPTIONS").Name("list-notes")
	r.HandleFunc("/notes", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-note")
	r.HandleFunc("/notes", handler.HandleDeleteAll).Methods("DELETE").Name("remove-all-notes")
	r.HandleFunc("/notes/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-note")
	r.HandleFunc("/notes/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-note")
	r.HandleFunc("/notes/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-note")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Errorf("add new note failed, parse form error: %s", err)
		http.Error(w, "parse form error", http.StatusInternalServerError)
		return
	}

	note := NewNote(r.Form.Get("title"), r.Form.Get("body"))
	addedNote, err := handler.store.Add(r.Context(), note)
	if err != nil {
		log.Printf("failed to add new note [%s]: %s", note.Title, err)
		http.Error(w, "error, failed to add new note", http.StatusInternalServerError)
		return
	}

	log.Printf("new note added: [%s]: %s", addedNote.Title, addedNote.ID)
	pkg.WriteJSON(w, http.StatusCreated, addedNote)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	id, ok := handler.parseID(w, r)
	if !ok {
		return
	}

	note, err := handler.store.Get(r.Context(), id)
	if err != nil {
		log.Errorf("get note %s: %s", id, err)
		http.Error(w, "error, failed to get note", http.StatusInternalServerError)
		return
	}
	if note == nil {
		http.Error(w, "error, note not found", http.StatusNotFound)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, note)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "PUT, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	id, ok := handler.parseID(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Errorf("update note failed, parse form error: %s", err)
		http.Error(w, "parse form error", http.StatusInternalServerError)
		return
	}

	note := &Note{
		ID:    id,
		Title: r.Form.Get("title"),
		Body:  r.Form.Get("body"),
	}

	updatedNote, err := handler.store.Update(r.Context(), note)
	if err != nil {
		log.Printf("failed to update note [%s], [%s]: %s", note.ID, note.Title, err)
		http.Error(w, "error, failed to update note", http.StatusInternalServerError)
		return
	}

	log.Printf("note updated: [%s]: %s", updatedNote.Title, updatedNote.ID)
	pkg.WriteJSON(w, http.StatusOK, updatedNote)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "DELETE, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	id, ok := handler.parseID(w, r)
	if !ok {
		return
	}

	if err := handler.store.Delete(r.Context(), id); err != nil {
		log.Printf("failed to delete note %s: %s", id, err)
		http.Error(w, "error, note not deleted, internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteText(w, http.StatusOK, fmt.Sprintf("deleted:%s", id))
}

func (handler *Handler) HandleDeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := handler.store.DeleteAll(r.Context()); err != nil {
		log.Errorf("failed to delete all notes: %s", err)
		http.Error(w, "error, notes not deleted, internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteText(w, http.StatusOK, "deleted:all")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, POST, DELETE, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	notes, err := handler.store.List(r.Context())
	if err != nil {
		log.Errorf("list notes error: %s", err)
		http.Error(w, "failed to get notes", http.StatusInternalServerError)
		return
	}

	if len(notes) == 0 {
		notes = []Note{}
	}

	pkg.WriteJSON(w, http.StatusOK, NotesListResponse{
		Notes: notes,
		Total: len(notes),
	})
}

func (handler *Handler) HandleNewID(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	id, err := handler.store.NewID()
	if errors.Is(err, ErrIDGenerationUnsupported) {
		http.Error(w, "error, id generation not supported", http.StatusNotImplemented)
		return
	}
	if err != nil {
		log.Errorf("generate note id: %s", err)
		http.Error(w, "error, failed to generate id", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string]ID{"id": id})
}

func (handler *Handler) parseID(w http.ResponseWriter, r *http.Request) (ID, bool) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return nil, false
	}
	if !handler.store.IsValidID(idStr) {
		http.Error(w, "error, id invalid", http.StatusBadRequest)
		return nil, false
	}

	id, err := handler.store.ParseID(idStr)
	if err != nil {
		http.Error(w, "error, id invalid", http.StatusBadRequest)
		return nil, false
	}
	return id, true
}
