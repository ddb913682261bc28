package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"marketplace_escrow/internal/infrastructure/logger"
	"marketplace_escrow/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MockDeclinedPaymentMethod makes the mock gateway answer "rejected", so the
// decline path can be exercised without a sandbox account.
const MockDeclinedPaymentMethod = "mock_declined"

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	log      *logger.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, log *logger.Logger) (*MercadoPagoGateway, error) {
	log = log.With("component", "mercadopago")
	if IsMockEnabled() {
		log.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: log}, nil
	}

	if accessToken == "" {
		log.Error("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("[payment][gateway] failed creating sdk config", "error", err)
		return nil, err
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: log}, nil
}

// NewMockGateway returns a gateway that never leaves the process.
func NewMockGateway(log *logger.Logger) *MercadoPagoGateway {
	return &MercadoPagoGateway{mockMode: true, log: log.With("component", "mercadopago")}
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockCreate(requestPayload)
	}

	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Debug("[payment][gateway] create start", "payload_len", len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.log.Error("[payment][gateway] payload unmarshal failed", "error", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Error("[payment][gateway] sdk create failed", "error", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.log.Info("[payment][gateway] create success", "provider_payment_id", resp.ID, "provider_status", resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func (g *MercadoPagoGateway) mockCreate(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	status, detail := "approved", "accredited"
	if method, _ := resp["payment_method_id"].(string); method == MockDeclinedPaymentMethod {
		status, detail = "rejected", "cc_rejected_other_reason"
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = status
	resp["status_detail"] = detail
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now
	}
	if status == "approved" {
		resp["date_approved"] = now
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.log.Info("[payment][gateway] mock create", "provider_payment_id", id, "provider_status", status)
	return id, status, b, nil
}

func IsMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
