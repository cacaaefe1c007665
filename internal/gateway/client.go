package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// ErrUnauthorized : la session côté API commerce n'est plus valide. Le point
// d'interception est unique, ici ; les couches au-dessus se contentent de
// errors.Is.
var ErrUnauthorized = errors.New("session expirée ou invalide")

// ErrUnreachable : le serveur commerce est injoignable (erreur transport,
// pas de réponse HTTP).
var ErrUnreachable = errors.New("serveur commerce injoignable")

// APIError est une réponse d'erreur renvoyée par l'API commerce. Code est le
// code structuré quand le serveur en fournit un ; Message est le texte brut.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("erreur API commerce (HTTP %d)", e.Status)
}

// Client enveloppe tous les appels sortants vers l'API commerce.
// Il est construit par requête entrante : les jetons viennent de la session
// du client courant, et OnUnauthorized permet au middleware de purger cette
// session exactement une fois par réponse 401.
type Client struct {
	BaseURL    string
	Token      string // jeton client
	AdminToken string // jeton admin, prioritaire s'il est présent
	HTTP       *http.Client

	// OnUnauthorized est appelé au plus une fois, avant que do ne retourne
	// ErrUnauthorized.
	OnUnauthorized func()

	unauthorizedFired bool
}

// Timeout global : aucune attente illimitée sur le réseau, y compris sur la
// création d'intention et la vérification de paiement.
const requestTimeout = 15 * time.Second

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: requestTimeout},
	}
}

// do exécute un appel vers l'API commerce et décode la réponse dans out.
// Les GET (idempotents) sont retentés une fois après une erreur transport ;
// jamais les écritures : rejouer un POST /payment/create-order risquerait une
// double réservation chez le prestataire.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("sérialisation requête: %w", err)
		}
	}

	attempts := 1
	if method == http.MethodGet {
		attempts = 2
	}

	var lastErr error
	for try := 0; try < attempts; try++ {
		if try > 0 {
			log.Printf("🔁 Nouvelle tentative GET %s après erreur transport", path)
			select {
			case <-time.After(300 * time.Millisecond):
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", ErrUnreachable, ctx.Err())
			}
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
		if err != nil {
			return err
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		// Le jeton admin prime sur le jeton client quand les deux existent.
		if c.AdminToken != "" {
			req.Header.Set("Authorization", "Bearer "+c.AdminToken)
		} else if c.Token != "" {
			req.Header.Set("Authorization", "Bearer "+c.Token)
		}

		resp, err := c.HTTP.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", ErrUnreachable, err)
			continue
		}

		return c.handleResponse(resp, path, out)
	}
	return lastErr
}

func (c *Client) handleResponse(resp *http.Response, path string, out any) error {
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		log.Printf("🔒 401 sur %s — purge des identifiants locaux", path)
		if c.OnUnauthorized != nil && !c.unauthorizedFired {
			c.unauthorizedFired = true
			c.OnUnauthorized()
		}
		return ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		// Meilleur effort : un corps illisible laisse juste le message vide.
		_ = json.Unmarshal(raw, apiErr)
		log.Printf("❌ API commerce %s → HTTP %d (%s)", path, resp.StatusCode, apiErr.Message)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("décodage réponse %s: %w", path, err)
		}
	}
	return nil
}

// envelope est le format commun des réponses de l'API commerce.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// reject transforme une réponse 200 avec success=false en erreur exploitable.
func (e envelope) reject() error {
	if e.Success {
		return nil
	}
	return &APIError{Status: http.StatusOK, Code: e.Code, Message: e.Message}
}
