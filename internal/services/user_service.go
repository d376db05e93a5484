package services

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/costmanager/backend/internal/repository"
)

// UserService serves user reads. The total comes straight off the
// ledger field; it is never recomputed from the costs table.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetUser retrieves a user by id
// @Summary Get user by ID
// @Description Returns the user's name and their running cost total
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} object{first_name=string,last_name=string,id=int,total=number}
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Failure 500 {object} services.ErrorResponse
// @Router /users/{id} [get]
func (s *UserService) GetUser(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")

	userID, err := ParseUserID(idParam)
	if err != nil {
		SendErrorResponse(w, msgBadUserIDFormat, http.StatusBadRequest, nil)
		return
	}

	user, err := s.users.FindByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			SendErrorResponse(w, "No user found", http.StatusNotFound, nil)
			return
		}
		log.Printf("[USER] Lookup failed for %d: %v", userID, err)
		SendErrorResponse(w, "Failed to fetch user", http.StatusInternalServerError, nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"id":         user.ID,
		"total":      user.Total,
	})
}

// AboutUs returns static maintainer info
// @Summary About the maintainers
// @Tags users
// @Produce json
// @Success 200 {array} object{first_name=string,last_name=string}
// @Router /about [get]
func (s *UserService) AboutUs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode([]map[string]string{
		{"first_name": "David", "last_name": "Saadia"},
		{"first_name": "Avivit", "last_name": "Lazra"},
	})
}
