package model

import "github.com/golang-jwt/jwt/v5"

// AdminClaims are JWT claims for catalog editors
type AdminClaims struct {
	AdminID string `json:"adminId"`
	jwt.RegisteredClaims
}

// AttemptClaims are JWT claims scoped to a single assessment attempt
type AttemptClaims struct {
	SessionID    string `json:"sessionId"`
	AssessmentID string `json:"assessmentId"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for admin login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token   string `json:"token"`
	AdminID string `json:"adminId"`
}
