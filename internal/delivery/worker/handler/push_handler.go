package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"geekstore/config"
	deliverycontext "geekstore/internal/delivery/context"
	"geekstore/internal/domain/constants"
	"geekstore/internal/domain/entity"
	"geekstore/internal/infra/pubsub"
	"geekstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying mail events
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validate       tokenValidator
	logger         *slog.Logger
	mailUC         usecase.MailUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	MailUC usecase.MailUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google signs push requests, and develop runs against the emulator
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validate:       idtoken.Validate,
		logger:         params.Logger,
		mailUC:         params.MailUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// A 2xx acknowledges the message; 503 asks Pub/Sub to redeliver it.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PubSubPushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.DecodeMailEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode mail event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > X-Request-Id header
	requestID := ExtractRequestID(ctx, pushMsg.Message.Attributes[pubsub.AttrRequestID], event)
	ctx, reqLogger := deliverycontext.Scope(ctx, h.logger, requestID)

	reqLogger.Info("[Worker] Processing mail event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("type", string(event.Type)),
	)

	if err := h.mailUC.HandleMailEvent(ctx, event); err != nil {
		retryable := IsRetryable(err)
		reqLogger.Error("[Worker] Failed to handle mail event",
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// IsRetryable reports whether redelivering the event may succeed.
func IsRetryable(err error) bool {
	return err != nil && !errors.Is(err, usecase.ErrUnrenderableMail)
}

// ExtractRequestID picks the first usable request id from the transport attribute,
// the event payload and the context, generating one when none is present.
func ExtractRequestID(ctx context.Context, attribute string, event *entity.MailEvent) string {
	candidates := []string{attribute, "", deliverycontext.GetRequestIDFromContext(ctx)}
	if event != nil {
		candidates[1] = event.RequestID
	}
	for _, candidate := range candidates {
		if id := deliverycontext.SanitizeRequestID(candidate); id != "" {
			return id
		}
	}

	return deliverycontext.NewRequestID()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Fall back to the endpoint URL when no audience is configured
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
