package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"firebase.google.com/go/auth"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/muizrexhepi/menyro-sub000/config/database"
	"github.com/muizrexhepi/menyro-sub000/config/environment"
	"github.com/muizrexhepi/menyro-sub000/models"
	"github.com/muizrexhepi/menyro-sub000/utils"
)

const sessionTokenTTL = 72 * time.Hour

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword?key=%s"

type AuthService struct {
	AuthClient      *auth.Client
	FirestoreClient *firestore.Client
	HTTPClient      *http.Client

	signInURL   string
	loadProfile func(ctx context.Context, uid string) (*models.UserProfile, error)
}

// NewAuthService initializes AuthService with Firebase Auth and Firestore
func NewAuthService() *AuthService {
	s := &AuthService{
		AuthClient:      database.GetFirebaseAuthClient(),
		FirestoreClient: database.GetFirestoreClient(),
		HTTPClient:      &http.Client{Timeout: 10 * time.Second},
	}
	s.signInURL = fmt.Sprintf(signInEndpoint, environment.GetFirebaseAPIKey())
	s.loadProfile = s.profileFromFirestore
	return s
}

func (s *AuthService) profileFromFirestore(ctx context.Context, uid string) (*models.UserProfile, error) {
	doc, err := s.FirestoreClient.Collection("users").Doc(uid).Get(ctx)
	if err != nil {
		return nil, err
	}
	var profile models.UserProfile
	if err := doc.DataTo(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// AuthResult is what register/login hand back to the controller.
type AuthResult struct {
	Token   string              `json:"token"`
	Profile *models.UserProfile `json:"profile"`
}

// Register creates the Firebase Auth user, writes the Firestore
// profile document and mints a session token. Onboarding starts
// incomplete; the dashboard stays gated until the wizard commits.
func (s *AuthService) Register(ctx context.Context, email, password, displayName string) (*AuthResult, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	userRecord, err := s.AuthClient.CreateUser(ctx, params)
	if err != nil {
		utils.Logger().Error("firebase user creation failed", zap.String("email", email), zap.Error(err))
		return nil, utils.WrapError(http.StatusBadRequest, "register_failed", "Failed to register user", err)
	}

	now := time.Now().UTC()
	profile := &models.UserProfile{
		UID:                 userRecord.UID,
		Email:               email,
		DisplayName:         displayName,
		OnboardingCompleted: false,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if _, err := s.FirestoreClient.Collection("users").Doc(userRecord.UID).Set(ctx, profile); err != nil {
		utils.Logger().Error("profile document creation failed", zap.String("uid", userRecord.UID), zap.Error(err))
		return nil, utils.WrapError(http.StatusInternalServerError, "register_failed", "Failed to create user profile", err)
	}

	token, err := s.mintToken(userRecord.UID, email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Profile: profile}, nil
}

// Login verifies email/password through the Firebase identitytoolkit
// REST endpoint and mints a session token. The admin SDK cannot check
// passwords, so the web API key endpoint does that part.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body, err := json.Marshal(map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, utils.WrapError(http.StatusInternalServerError, "login_failed", "Failed to sign in", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.signInURL, bytes.NewReader(body))
	if err != nil {
		return nil, utils.WrapError(http.StatusInternalServerError, "login_failed", "Failed to sign in", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		utils.Logger().Error("identitytoolkit request failed", zap.Error(err))
		return nil, utils.WrapError(http.StatusInternalServerError, "login_failed", "Failed to sign in", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, utils.NewCustomError(http.StatusUnauthorized, "Invalid email or password")
	}

	var signIn struct {
		LocalID string `json:"localId"`
		Email   string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&signIn); err != nil {
		return nil, utils.WrapError(http.StatusInternalServerError, "login_failed", "Failed to sign in", err)
	}

	profile, err := s.loadProfile(ctx, signIn.LocalID)
	if err != nil {
		// A verified sign-in without a profile answers the same as a
		// bad password; a distinct status would reveal which emails
		// have accounts.
		utils.Logger().Warn("profile missing for verified sign-in", zap.String("uid", signIn.LocalID), zap.Error(err))
		return nil, utils.NewCustomError(http.StatusUnauthorized, "Invalid email or password")
	}

	token, err := s.mintToken(signIn.LocalID, signIn.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Profile: profile}, nil
}

func (s *AuthService) mintToken(uid, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   uid,
		"email": email,
		"exp":   time.Now().Add(sessionTokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(environment.GetJWTSecret()))
	if err != nil {
		utils.Logger().Error("session token signing failed", zap.Error(err))
		return "", utils.WrapError(http.StatusInternalServerError, "token_failed", "Failed to create session token", err)
	}
	return signed, nil
}

// VerifySessionToken parses a session JWT and returns the user ID.
func VerifySessionToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(environment.GetJWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return "", utils.NewCustomError(http.StatusUnauthorized, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", utils.NewCustomError(http.StatusUnauthorized, "Invalid token claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", utils.NewCustomError(http.StatusUnauthorized, "Invalid token subject")
	}
	return sub, nil
}
