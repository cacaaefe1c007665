package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"

	"velour_storefront/internal/config"
	"velour_storefront/internal/gateway"
)

const SessionName = "velour_session"

var Store *sessions.CookieStore

// InitSessionStore configure le store de session cookie qui tient lieu de
// stockage local des jetons côté navigateur.
func InitSessionStore(secret string) {
	Store = sessions.NewCookieStore([]byte(secret))
	Store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
	log.Println("✅ Store de session initialisé")
}

// Tokens lit les jetons courants depuis la session.
func Tokens(c *gin.Context) (token, adminToken string) {
	sess, err := Store.Get(c.Request, SessionName)
	if err != nil {
		return "", ""
	}
	token, _ = sess.Values["token"].(string)
	adminToken, _ = sess.Values["adminToken"].(string)
	return token, adminToken
}

// SaveToken écrit un jeton (client ou admin) dans la session.
func SaveToken(c *gin.Context, key, value string) error {
	sess, _ := Store.Get(c.Request, SessionName)
	sess.Values[key] = value
	return sess.Save(c.Request, c.Writer)
}

// ClearCredentials purge les deux jetons. C'est la réaction uniforme à toute
// réponse 401 de l'API commerce, quel que soit l'appel d'origine.
func ClearCredentials(c *gin.Context) {
	sess, _ := Store.Get(c.Request, SessionName)
	delete(sess.Values, "token")
	delete(sess.Values, "adminToken")
	if err := sess.Save(c.Request, c.Writer); err != nil {
		log.Printf("⚠️ Purge de session échouée: %v", err)
	}
	log.Println("🔒 Identifiants purgés — retour à la connexion")
}

// expired fait une pré-vérification locale de l'expiration du jeton, sans
// valider la signature : la signature est l'affaire du serveur distant.
func expired(tokenString string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return false // jeton opaque : on laisse le serveur trancher
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Now().After(exp.Time)
}

// userKey dérive une clé utilisateur stable du jeton, pour les clés Redis
// (tentative de checkout, verrous panier, canal de diffusion).
func userKey(tokenString string) string {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err == nil {
		for _, name := range []string{"id", "_id", "userId", "user_id"} {
			if id, ok := claims[name].(string); ok && id != "" {
				return id
			}
		}
	}
	sum := sha256.Sum256([]byte(tokenString))
	return hex.EncodeToString(sum[:8])
}

// AuthRequired exige un jeton client en session, encore valable. Construit le
// client de l'API commerce pour la requête et le met dans le contexte Gin.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, adminToken := Tokens(c)
		if token == "" && adminToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié", "redirect": "/login"})
			c.Abort()
			return
		}

		active := token
		if adminToken != "" {
			active = adminToken
		}
		if expired(active) {
			log.Println("❌ Jeton expiré")
			ClearCredentials(c)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expirée", "redirect": "/login"})
			c.Abort()
			return
		}

		c.Set("user_id", userKey(active))
		c.Set("gateway", NewGatewayClient(c))
		c.Next()
	}
}

// AdminRequired exige un jeton admin en session.
func AdminRequired(c *gin.Context) {
	_, adminToken := Tokens(c)
	if adminToken == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs"})
		c.Abort()
		return
	}
	c.Next()
}

// NewGatewayClient construit le client de l'API commerce pour la requête
// courante : jetons de la session, purge de session en cas de 401.
func NewGatewayClient(c *gin.Context) *gateway.Client {
	token, adminToken := Tokens(c)
	gw := gateway.New(config.CommerceAPIURL())
	gw.Token = token
	gw.AdminToken = adminToken
	gw.OnUnauthorized = func() {
		ClearCredentials(c)
	}
	return gw
}

// Gateway récupère le client commerce posé par AuthRequired.
func Gateway(c *gin.Context) *gateway.Client {
	return c.MustGet("gateway").(*gateway.Client)
}
