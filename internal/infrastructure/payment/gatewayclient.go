// Package payment holds the HTTP client for the external payment gateway.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/recero-inc/recero/internal/application/billing/paymentgateway"
	"github.com/recero-inc/recero/internal/shared/config"
	"github.com/recero-inc/recero/internal/shared/logger"
)

const (
	// Maximum response body size for gateway responses (64KB)
	maxGatewayResponseSize = 64 << 10

	defaultRequestTimeout = 10 * time.Second
)

type paymentRequestBody struct {
	MerchantID  string `json:"merchant_id"`
	ReferenceID string `json:"reference_id"`
	StoreID     string `json:"store_id"`
	TokenID     string `json:"token_id"`
	Amount      int64  `json:"amount"`
}

type cancelRequestBody struct {
	MerchantID  string `json:"merchant_id"`
	ReferenceID string `json:"reference_id"`
	TokenID     string `json:"token_id"`
}

type gatewayResponseBody struct {
	ResultCode    string `json:"result_code"`
	ResultMessage string `json:"result_message"`
	ErrorCode     string `json:"error_code"`
}

// GatewayClient calls the payment gateway over HTTP. Every failure mode on the
// way to a gateway verdict, transport errors included, is reported as a
// declined Result so callers have exactly one outcome shape to handle.
type GatewayClient struct {
	httpClient  *http.Client
	baseURL     string
	merchantID  string
	merchantKey string
	logger      logger.Interface
}

func NewGatewayClient(cfg config.PaymentConfig, log logger.Interface) *GatewayClient {
	timeout := defaultRequestTimeout
	if cfg.TimeoutSecs > 0 {
		timeout = time.Duration(cfg.TimeoutSecs) * time.Second
	}

	return &GatewayClient{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     cfg.BaseURL,
		merchantID:  cfg.MerchantID,
		merchantKey: cfg.MerchantKey,
		logger:      log,
	}
}

var _ paymentgateway.PaymentGateway = (*GatewayClient)(nil)

func (c *GatewayClient) RequestPayment(ctx context.Context, req paymentgateway.PaymentRequest) paymentgateway.Result {
	body := paymentRequestBody{
		MerchantID:  c.merchantID,
		ReferenceID: strconv.FormatUint(uint64(req.RecordID), 10),
		StoreID:     strconv.FormatUint(uint64(req.StoreID), 10),
		TokenID:     req.PaymentTokenID,
		Amount:      req.Amount,
	}

	result := c.post(ctx, "/v1/payments", body)
	if !result.IsOK() {
		c.logger.Warnw("payment request declined",
			"record_id", req.RecordID,
			"store_id", req.StoreID,
			"error_code", result.ErrorCode,
			"result_message", result.ResultMessage,
		)
	}
	return result
}

func (c *GatewayClient) CancelPayment(ctx context.Context, req paymentgateway.CancelRequest) paymentgateway.Result {
	body := cancelRequestBody{
		MerchantID:  c.merchantID,
		ReferenceID: req.ReferenceID,
		TokenID:     req.Token,
	}

	result := c.post(ctx, "/v1/payments/cancel", body)
	if !result.IsOK() {
		c.logger.Warnw("payment cancel declined",
			"reference_id", req.ReferenceID,
			"error_code", result.ErrorCode,
			"result_message", result.ResultMessage,
		)
	}
	return result
}

func (c *GatewayClient) post(ctx context.Context, path string, body interface{}) paymentgateway.Result {
	payload, err := json.Marshal(body)
	if err != nil {
		return transportFailure(fmt.Sprintf("failed to encode request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return transportFailure(fmt.Sprintf("failed to create request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.merchantKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportFailure(fmt.Sprintf("gateway unreachable: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return transportFailure(fmt.Sprintf("unexpected status code: %d", resp.StatusCode))
	}

	var data gatewayResponseBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxGatewayResponseSize)).Decode(&data); err != nil {
		return transportFailure(fmt.Sprintf("failed to decode response: %v", err))
	}

	if data.ResultCode != paymentgateway.ResultCodeOK {
		return paymentgateway.Result{
			ResultCode:    paymentgateway.ResultCodeNotOK,
			ResultMessage: data.ResultMessage,
			ErrorCode:     data.ErrorCode,
		}
	}

	return paymentgateway.Result{
		ResultCode:    paymentgateway.ResultCodeOK,
		ResultMessage: data.ResultMessage,
	}
}

func transportFailure(message string) paymentgateway.Result {
	return paymentgateway.Result{
		ResultCode:    paymentgateway.ResultCodeNotOK,
		ResultMessage: message,
		ErrorCode:     paymentgateway.ErrorCodeTransport,
	}
}
