package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/IpitingaJA/church_event_app/internal/core/domain"
	portssvc "github.com/IpitingaJA/church_event_app/internal/core/ports/services"
	"github.com/IpitingaJA/church_event_app/internal/platform/config"
	"github.com/IpitingaJA/church_event_app/internal/utils"
	"github.com/resend/resend-go/v2"
)

// Service sends participant notifications through the Resend relay. When
// email is disabled it logs the intent and reports success, so local
// environments never need a relay key.
type Service struct {
	enabled      bool
	from         string
	frontendBase string
	client       *resend.Client
	logger       *slog.Logger
}

var _ portssvc.MailerSvcFacade = (*Service)(nil)

// NewService creates a mailer bound to the configured relay.
func NewService(cfg *config.Config, logger *slog.Logger) *Service {
	var client *resend.Client
	if cfg.EmailEnabled && cfg.ResendAPIKey != "" {
		client = resend.NewClient(cfg.ResendAPIKey)
	}
	return &Service{
		enabled:      cfg.EmailEnabled,
		from:         cfg.EmailFrom,
		frontendBase: cfg.FrontendBaseURL,
		client:       client,
		logger:       logger.With(slog.String("component", "mailer")),
	}
}

// validateEmailAddress rejects malformed addresses and header injection
// attempts before they reach the relay.
func validateEmailAddress(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("invalid email format: %w", err)
	}
	if strings.ContainsAny(addr.Address, "\r\n") {
		return fmt.Errorf("invalid email address: contains newline characters")
	}
	return nil
}

func (s *Service) send(ctx context.Context, to, subject, htmlBody string) error {
	if err := validateEmailAddress(to); err != nil {
		return fmt.Errorf("invalid recipient email: %w", err)
	}

	if !s.enabled {
		s.logger.Info("email disabled, skipping send",
			slog.String("to", to),
			slog.String("subject", subject))
		return nil
	}
	if s.client == nil {
		return fmt.Errorf("resend client not initialized")
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlBody,
	}
	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend API error: %w", err)
	}

	s.logger.Info("email sent",
		slog.String("email_id", sent.Id),
		slog.String("to", to))
	return nil
}

// SendInscricaoConfirmation sends the registration confirmation with the
// participant's details and an access link.
func (s *Service) SendInscricaoConfirmation(ctx context.Context, p domain.Participant) error {
	linkAcesso := fmt.Sprintf("%s/participantes/%s", strings.TrimRight(s.frontendBase, "/"), p.Codigo)
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 5px;">
			<h2 style="color: #4361ee; text-align: center;">Confirmação de Cadastro</h2>
			<p style="font-size: 16px;">Olá, <strong>%s</strong>!</p>
			<p style="font-size: 16px;">Seu cadastro como participante foi realizado com sucesso.</p>
			<ul style="list-style: none; padding: 0;">
				<li style="margin-bottom: 10px;"><strong>Inscrição:</strong> %s</li>
				<li style="margin-bottom: 10px;"><strong>Nome:</strong> %s</li>
				<li style="margin-bottom: 10px;"><strong>Idade:</strong> %d</li>
				<li style="margin-bottom: 10px;"><strong>Data de Nascimento:</strong> %s</li>
				<li style="margin-bottom: 10px;"><strong>Igreja:</strong> %s</li>
			</ul>
			<p style="font-size: 16px;">Obrigado por se cadastrar!</p>
			<p style="font-size: 16px; text-align: center; margin-top: 30px;">
				<a href="%s" style="background-color: #4361ee; color: #fff; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Acessar o Sistema</a>
			</p>
		</div>`,
		p.Nome, p.Codigo, p.Nome, p.Idade, utils.FormatDate(p.Nascimento), igrejaOrNA(p), linkAcesso)

	return s.send(ctx, p.Email, "Confirmação de Cadastro", body)
}

// SendPagamentoConfirmation notifies a participant their payment was
// confirmed.
func (s *Service) SendPagamentoConfirmation(ctx context.Context, p domain.Participant) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 5px;">
			<h2 style="color: #4361ee; text-align: center;">Pagamento Confirmado</h2>
			<p style="font-size: 16px;">Olá, <strong>%s</strong>!</p>
			<p style="font-size: 16px;">O pagamento da sua inscrição <strong>%s</strong> foi confirmado em %s.</p>
			<p style="font-size: 16px;">Até o evento!</p>
		</div>`,
		p.Nome, p.Codigo, utils.FormatDatePtr(p.DataConfirmacao))

	return s.send(ctx, p.Email, "Pagamento Confirmado", body)
}

func igrejaOrNA(p domain.Participant) string {
	if p.IgrejaNome == "" {
		return "N/A"
	}
	return p.IgrejaNome
}
