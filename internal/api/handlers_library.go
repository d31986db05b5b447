package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	posts, err := s.library.ListPosts(r.Context(), p.Plan)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, posts)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	post, err := s.library.GetPost(r.Context(), p.Plan, chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, post)
}

func (s *Server) handleSearchPosts(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	posts, err := s.library.SearchPosts(r.Context(), p.Plan, r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, posts)
}

func (s *Server) handleListLessons(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	lessons, err := s.library.ListLessons(r.Context(), p.Plan)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, lessons)
}

func (s *Server) handleListSnippets(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	snippets, err := s.library.ListSnippets(r.Context(), p.Plan)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, snippets)
}

func (s *Server) handleListTips(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r)
	if err != nil {
		writeError(w, err)
		return
	}
	tips, err := s.library.ListTips(r.Context(), p.Plan)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, tips)
}
