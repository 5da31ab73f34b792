package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"

	"github.com/dinakar-24/sse-pay/internal/models"
	"github.com/dinakar-24/sse-pay/internal/services"
)

type AuthHandler struct {
	Service *services.AuthService
}

func sessionMeta(r *http.Request) services.SessionMeta {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	return services.SessionMeta{
		DeviceInfo: r.Header.Get("X-Device-Info"),
		IPAddress:  ip,
		UserAgent:  r.UserAgent(),
	}
}

func (h *AuthHandler) StudentSignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	tokens, studentID, err := h.Service.SignInStudent(r.Context(), req, sessionMeta(r))
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		log.Printf("StudentSignIn error: %v", err)
		http.Error(w, "Failed to sign in", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"student_id":    studentID,
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

func (h *AuthHandler) AdminSignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	tokens, adminID, err := h.Service.SignInAdmin(r.Context(), req, sessionMeta(r))
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		log.Printf("AdminSignIn error: %v", err)
		http.Error(w, "Failed to sign in", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"admin_id":      adminID,
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	accessToken, claims, err := h.Service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			http.Error(w, "Invalid refresh token", http.StatusUnauthorized)
			return
		}
		log.Printf("Refresh error: %v", err)
		http.Error(w, "Failed to refresh token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"access_token": accessToken,
		"user_id":      claims.UserID,
		"user_type":    claims.UserType,
	})
}

func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if err := h.Service.SignOut(r.Context(), req.RefreshToken); err != nil {
		log.Printf("SignOut error: %v", err)
		http.Error(w, "Failed to sign out", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	userType, _ := r.Context().Value("user_type").(string)
	sessions, err := h.Service.GetSessions(r.Context(), contextUserID(r), userType)
	if err != nil {
		log.Printf("GetSessions error: %v", err)
		http.Error(w, "Failed to get sessions", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessions)
}

func (h *AuthHandler) RevokeSession(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if id == "" {
		http.Error(w, "Invalid session id", http.StatusBadRequest)
		return
	}
	if err := h.Service.RevokeSession(r.Context(), id); err != nil {
		log.Printf("RevokeSession error: %v", err)
		http.Error(w, "Failed to revoke session", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RollNo string `json:"roll_no"`
		Email  string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	// The code is issued even when delivery is unavailable; the response
	// never discloses whether the account exists.
	if _, err := h.Service.RequestPasswordReset(r.Context(), req.RollNo, req.Email); err != nil {
		log.Printf("RequestPasswordReset error: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "If the account exists, a reset code was sent"})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RollNo      string `json:"roll_no"`
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if err := h.Service.ResetPassword(r.Context(), req.RollNo, req.Email, req.Code, req.NewPassword); err != nil {
		log.Printf("ResetPassword error: %v", err)
		http.Error(w, "Failed to reset password", http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
