package handler

import (
	"net/http"

	"mnemo/internal/auth"
	"mnemo/internal/model"

	"gorm.io/gorm"
)

type MeHandler struct {
	DB *gorm.DB
}

func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var u model.User
	if err := h.DB.Where("id = ?", uid).First(&u).Error; err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, &u)
}
