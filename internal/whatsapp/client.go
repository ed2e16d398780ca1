package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bemviver/clinic-scheduler/internal/config"
)

const defaultBaseURL = "https://graph.facebook.com/v22.0"

// Client fala com a WhatsApp Cloud API. Sem token ou phone number id o
// envio vira no-op (Skipped), nunca erro: o agendamento não depende disso.
type Client struct {
	token         string
	phoneNumberID string
	templateName  string
	templateLang  string

	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Result resume uma tentativa de envio.
type Result struct {
	Skipped bool `json:"skipped,omitempty"`
	OK      bool `json:"ok"`
	Status  int  `json:"status,omitempty"`
}

func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	return &Client{
		token:         cfg.WhatsAppToken,
		phoneNumberID: cfg.WhatsAppPhoneNumberID,
		templateName:  cfg.WhatsAppTemplateName,
		templateLang:  cfg.WhatsAppTemplateLang,
		baseURL:       defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

func (c *Client) Configured() bool {
	return c.token != "" && c.phoneNumberID != ""
}

// SetBaseURL troca o endpoint da Cloud API (testes).
func (c *Client) SetBaseURL(url string) {
	c.baseURL = strings.TrimRight(url, "/")
}

type textPayload struct {
	MessagingProduct string   `json:"messaging_product"`
	RecipientType    string   `json:"recipient_type"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type textBody struct {
	Body string `json:"body"`
}

// SendText envia uma mensagem de texto simples. `to` aceita E.164 com ou
// sem "+"; a Cloud API só recebe dígitos.
func (c *Client) SendText(ctx context.Context, to, text string) (Result, error) {
	if !c.Configured() {
		return Result{Skipped: true}, nil
	}

	payload := textPayload{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               strings.TrimPrefix(to, "+"),
		Type:             "text",
		Text:             textBody{Body: text},
	}

	return c.post(ctx, payload)
}

type templatePayload struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Template         templateSpec `json:"template"`
}

type templateSpec struct {
	Name       string              `json:"name"`
	Language   templateLang        `json:"language"`
	Components []templateComponent `json:"components,omitempty"`
}

type templateLang struct {
	Code string `json:"code"`
}

type templateComponent struct {
	Type       string          `json:"type"`
	Parameters []templateParam `json:"parameters"`
}

type templateParam struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// SendTemplate envia uma mensagem de template aprovada. Nome vazio cai no
// template configurado ou em hello_world (que só existe em en_US).
func (c *Client) SendTemplate(ctx context.Context, to, name string, params []string) (Result, error) {
	if !c.Configured() {
		return Result{Skipped: true}, nil
	}

	if name == "" {
		name = c.templateName
	}
	if name == "" {
		name = "hello_world"
	}

	lang := c.templateLang
	if lang == "" {
		lang = "pt_BR"
	}
	if name == "hello_world" {
		lang = "en_US"
	}

	spec := templateSpec{
		Name:     name,
		Language: templateLang{Code: lang},
	}
	if len(params) > 0 {
		comp := templateComponent{Type: "body"}
		for _, p := range params {
			comp.Parameters = append(comp.Parameters, templateParam{Type: "text", Text: p})
		}
		spec.Components = []templateComponent{comp}
	}

	payload := templatePayload{
		MessagingProduct: "whatsapp",
		To:               strings.TrimPrefix(to, "+"),
		Type:             "template",
		Template:         spec,
	}

	return c.post(ctx, payload)
}

// Ping confere se o token é aceito pela Graph API sem enviar mensagem.
func (c *Client) Ping(ctx context.Context) (Result, error) {
	if !c.Configured() {
		return Result{Skipped: true}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/me?fields=id,name", nil)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{OK: false, Status: resp.StatusCode},
			fmt.Errorf("whatsapp: ping failed with status %d", resp.StatusCode)
	}
	return Result{OK: true, Status: resp.StatusCode}, nil
}

func (c *Client) post(ctx context.Context, payload any) (Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, err
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneNumberID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("body", string(respBody)).
			Msg("whatsapp send failed")
		return Result{OK: false, Status: resp.StatusCode},
			fmt.Errorf("whatsapp: send failed with status %d", resp.StatusCode)
	}

	return Result{OK: true, Status: resp.StatusCode}, nil
}
