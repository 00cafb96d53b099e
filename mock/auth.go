package mock

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/medivac/portal/service"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *DispatchService) register(w http.ResponseWriter, r *http.Request) {
	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(request.Name) == "" || request.Email == "" || request.Phone == "" || request.Password == "" {
		writeMessage(w, http.StatusBadRequest, "name, email, phone and password are required")
		return
	}
	profile, err := s.AddUser(request.Name, request.Email, request.Phone, request.Password, request.Role)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			writeMessage(w, http.StatusConflict, err.Error())
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	if !s.RegisterIssuesToken {
		writeJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "message": "User registered successfully"})
		return
	}
	u, _ := s.lookupUser(profile.ID)
	token, err := s.createJWT(u)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Token string           `json:"token"`
		User  *service.Profile `json:"user"`
	}{Token: token, User: profile})
}

func (s *DispatchService) login(w http.ResponseWriter, r *http.Request) {
	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u, ok := s.authenticateUser(request.Email, request.Password)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	token, err := s.createJWT(u)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Login successful", "token": token})
}
