package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"velour_storefront/internal/config"
	"velour_storefront/internal/gateway"
	"velour_storefront/internal/middleware"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// 🟢 POST /api/login
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	gw := gateway.New(config.CommerceAPIURL())
	res, err := gw.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	if err := middleware.SaveToken(c, "token", res.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde session"})
		return
	}
	log.Printf("✅ Connexion client : %s", req.Email)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type signUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// 🟢 POST /api/signup
func SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	gw := gateway.New(config.CommerceAPIURL())
	res, err := gw.SignUp(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	if res.Token != "" {
		if err := middleware.SaveToken(c, "token", res.Token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde session"})
			return
		}
	}
	log.Printf("✅ Compte créé : %s", req.Email)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// 🟢 POST /api/admin/login (jeton distinct du jeton client)
func AdminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	gw := gateway.New(config.CommerceAPIURL())
	res, err := gw.AdminLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	if err := middleware.SaveToken(c, "adminToken", res.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde session"})
		return
	}
	log.Printf("✅ Connexion admin : %s", req.Email)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// 🟢 POST /api/forgot-password
func ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	gw := gateway.New(config.CommerceAPIURL())
	message, devLink, err := gw.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	resp := gin.H{"success": true, "message": message}
	if devLink != "" {
		resp["devResetLink"] = devLink
	}
	c.JSON(http.StatusOK, resp)
}

type resetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// 🟢 POST /api/reset-password
func ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	gw := gateway.New(config.CommerceAPIURL())
	if err := gw.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		respondGatewayError(c, err)
		return
	}
	log.Println("✅ Mot de passe réinitialisé")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// 🟢 POST /api/logout
func Logout(c *gin.Context) {
	middleware.ClearCredentials(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// 🟢 GET /api/me
func Me(c *gin.Context) {
	user, err := middleware.Gateway(c).UserInfo(c.Request.Context())
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
