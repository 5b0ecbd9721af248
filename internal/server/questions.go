package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"qedit/internal/bank"
	"qedit/internal/logging"
)

// getQuestions returns the whole bank as stored on disk.
func (h *handler) getQuestions(w http.ResponseWriter, r *http.Request) {
	const op = "server.getQuestions"
	log := h.log.With(slog.String("op", op), slog.String("request_id", RequestID(r.Context())))

	b, err := h.store.Read()
	if err != nil {
		log.Error("failed to read bank", logging.Err(err))
		writeError(w, http.StatusInternalServerError, readErrorMessage(h.store.Path()))
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// saveQuestions overwrites the bank with the request body. The body is not validated
// beyond being a JSON object of category arrays.
func (h *handler) saveQuestions(w http.ResponseWriter, r *http.Request) {
	const op = "server.saveQuestions"
	log := h.log.With(slog.String("op", op), slog.String("request_id", RequestID(r.Context())))

	b, err := bank.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		log.Warn("rejected save body", logging.Err(err))
		writeError(w, http.StatusBadRequest, MessageInvalidBody)
		return
	}
	if err := h.store.Write(b); err != nil {
		log.Error("failed to write bank", logging.Err(err))
		writeError(w, http.StatusInternalServerError, writeErrorMessage(h.store.Path()))
		return
	}
	log.Info("bank saved",
		slog.Int("categories", len(b.Categories)),
		slog.Int("questions", b.QuestionCount()),
	)
	writeMessage(w, http.StatusOK, MessageSaved)
}

// getCategory returns the questions of one category.
func (h *handler) getCategory(w http.ResponseWriter, r *http.Request) {
	const op = "server.getCategory"
	log := h.log.With(slog.String("op", op), slog.String("request_id", RequestID(r.Context())))

	name := mux.Vars(r)["category"]
	b, err := h.store.Read()
	if err != nil {
		log.Error("failed to read bank", logging.Err(err))
		writeError(w, http.StatusInternalServerError, readErrorMessage(h.store.Path()))
		return
	}
	category, ok := b.Category(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Category not found: %s", name))
		return
	}
	questions := category.Questions
	if questions == nil {
		questions = []bank.Question{}
	}
	writeJSON(w, http.StatusOK, questions)
}

// maxBodyBytes caps the size of a save request.
const maxBodyBytes = 32 << 20

func readErrorMessage(path string) string {
	return "Error reading file: " + path
}

func writeErrorMessage(path string) string {
	return "Error writing file: " + path
}
