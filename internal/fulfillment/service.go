package fulfillment

import (
	"context"
	"fmt"
	"time"

	"github.com/vedicwisdom/funnel-backend/internal/content"
	"github.com/vedicwisdom/funnel-backend/internal/leads"
	"github.com/vedicwisdom/funnel-backend/internal/payments"
	pkgerrors "github.com/vedicwisdom/funnel-backend/pkg/errors"
	"github.com/vedicwisdom/funnel-backend/pkg/enums"
	"github.com/vedicwisdom/funnel-backend/pkg/logger"
	"github.com/vedicwisdom/funnel-backend/pkg/mailer"
	"github.com/vedicwisdom/funnel-backend/pkg/metrics"
)

type signatureVerifier interface {
	Verify(orderID, paymentID, claimed string) error
}

type ledger interface {
	Append(ctx context.Context, lead leads.Lead) error
	Update(ctx context.Context, leadID string, patch leads.Patch) (bool, error)
	Annotate(ctx context.Context, leadID, message string)
	SetStatus(ctx context.Context, leadID string, status enums.LeadStatus, errText string)
}

type generator interface {
	GenerateReport(ctx context.Context, details content.BirthDetails) (content.ReportContent, bool)
	GenerateTarot(ctx context.Context, question, name string) content.TarotReading
}

type renderer interface {
	Render(name string, data content.ReportContent) ([]byte, error)
	Filename(name string) string
}

// TarotPayload is a reading the customer already generated during checkout.
type TarotPayload struct {
	Question string   `json:"question"`
	Cards    []string `json:"cards"`
	Analysis string   `json:"analysis"`
}

// Request carries everything needed to deliver one paid report.
type Request struct {
	LeadID    string
	Name      string
	Email     string
	DOB       string
	Time      string
	Place     string
	Plan      enums.Plan
	PaymentID string
	OrderID   string
	Signature string
	Tarot     *TarotPayload
}

// Service runs the paid delivery pipeline: verify the payment, mark the
// lead PAID, generate content, render the PDF and email it, then record
// the final status on the ledger.
type Service interface {
	Process(ctx context.Context, req Request) error
}

type service struct {
	verifier signatureVerifier
	ledger   ledger
	gen      generator
	renderer renderer
	mail     mailer.Sender
	met      *metrics.FulfillmentMetrics
	logg     *logger.Logger
	year     int
	now      func() time.Time
}

// NewService builds the fulfillment orchestrator.
func NewService(
	verifier signatureVerifier,
	ledg ledger,
	gen generator,
	rend renderer,
	mail mailer.Sender,
	met *metrics.FulfillmentMetrics,
	logg *logger.Logger,
	year int,
) (Service, error) {
	if verifier == nil || ledg == nil || gen == nil || rend == nil || mail == nil {
		return nil, fmt.Errorf("fulfillment dependencies required")
	}
	if year == 0 {
		year = 2026
	}
	return &service{
		verifier: verifier,
		ledger:   ledg,
		gen:      gen,
		renderer: rend,
		mail:     mail,
		met:      met,
		logg:     logg,
		year:     year,
		now:      time.Now,
	}, nil
}

func (s *service) Process(ctx context.Context, req Request) (err error) {
	ctx = s.withLead(ctx, req.LeadID)

	defer func() {
		if r := recover(); r != nil {
			s.error(ctx, "fulfillment panicked", fmt.Errorf("%v", r))
			s.ledger.SetStatus(ctx, req.LeadID, enums.LeadStatusFailed, fmt.Sprintf("panic: %v", r))
			err = pkgerrors.New(pkgerrors.CodeInternal, "report delivery failed")
		}
	}()

	// Payment first. A bad signature means nothing else happens.
	if verr := s.step(ctx, "verify", func() error {
		return s.verifier.Verify(req.OrderID, req.PaymentID, req.Signature)
	}); verr != nil {
		return verr
	}

	s.markPaid(ctx, req)

	data, fellBack := s.generate(ctx, req)

	pdf, rerr := s.render(ctx, req.Name, data)
	if rerr != nil {
		s.ledger.SetStatus(ctx, req.LeadID, enums.LeadStatusFailed, rerr.Error())
		return pkgerrors.Wrap(pkgerrors.CodeInternal, rerr, "rendering report")
	}

	if merr := s.email(ctx, req, pdf); merr != nil {
		s.ledger.SetStatus(ctx, req.LeadID, enums.LeadStatusFailed, merr.Error())
		return pkgerrors.Wrap(pkgerrors.CodeDependency, merr, "emailing report")
	}

	final := enums.LeadStatusFulfilled
	if fellBack {
		final = enums.LeadStatusSentWithFallback
	}
	s.ledger.SetStatus(ctx, req.LeadID, final, "")
	s.info(ctx, "report delivered as "+string(final))
	return nil
}

// markPaid records the payment on the ledger. When the lead row is missing
// a replacement row is appended. Ledger trouble never blocks delivery; the
// customer has already paid.
func (s *service) markPaid(ctx context.Context, req Request) {
	paymentID := req.PaymentID
	if paymentID == "" {
		paymentID = "N/A"
	}
	patch := leads.Patch{
		Status:    enums.LeadStatusPaid,
		PaymentID: paymentID,
		Plan:      req.Plan,
		Amount:    payments.AmountRupees(string(req.Plan)),
		Email:     req.Email,
	}

	start := s.now()
	updated, err := s.ledger.Update(ctx, req.LeadID, patch)
	if err == nil && updated {
		s.observe("ledger", start, nil)
		return
	}

	leadID := req.LeadID
	if leadID == "" {
		leadID = fmt.Sprintf("fallback-%d", s.now().UnixMilli())
	}
	aerr := s.ledger.Append(ctx, leads.Lead{
		LeadID:    leadID,
		Name:      req.Name,
		Email:     req.Email,
		DOB:       req.DOB,
		Time:      req.Time,
		Place:     req.Place,
		Plan:      req.Plan,
		Status:    enums.LeadStatusPaid,
		PaymentID: paymentID,
		Amount:    patch.Amount,
	})
	s.observe("ledger", start, aerr)
	if aerr != nil {
		s.error(ctx, "recording payment on ledger failed", aerr)
	}
}

func (s *service) generate(ctx context.Context, req Request) (content.ReportContent, bool) {
	start := s.now()
	data, fellBack := s.gen.GenerateReport(ctx, content.BirthDetails{
		Name:  req.Name,
		DOB:   req.DOB,
		Time:  req.Time,
		Place: req.Place,
	})
	if fellBack {
		s.observe("generate", start, fmt.Errorf("fallback content used"))
		if s.met != nil {
			s.met.IncFallback()
		}
		s.ledger.Annotate(ctx, req.LeadID, "AI error: fallback content used")
	} else {
		s.observe("generate", start, nil)
	}

	if req.Plan.IncludesTarot() || req.Tarot != nil {
		data.IsTarot = true
		reading := s.tarotReading(ctx, req)
		data.TarotQuestion = reading.Question
		data.TarotCards = reading.Cards
		data.TarotAnalysis = reading.Analysis
	}
	return data, fellBack
}

// tarotReading prefers the spread the customer already saw at checkout so
// the PDF matches it. Tarot plans without one get a fresh reading.
func (s *service) tarotReading(ctx context.Context, req Request) content.TarotReading {
	if req.Tarot != nil && len(req.Tarot.Cards) > 0 {
		return content.TarotReading{
			Question: req.Tarot.Question,
			Cards:    req.Tarot.Cards,
			Analysis: req.Tarot.Analysis,
		}
	}
	question := fmt.Sprintf("What does %d hold for me?", s.year)
	return s.gen.GenerateTarot(ctx, question, req.Name)
}

func (s *service) render(ctx context.Context, name string, data content.ReportContent) ([]byte, error) {
	start := s.now()
	pdf, err := s.renderer.Render(name, data)
	s.observe("render", start, err)
	if err != nil {
		s.error(ctx, "rendering report failed", err)
	}
	return pdf, err
}

func (s *service) email(ctx context.Context, req Request, pdf []byte) error {
	msg := mailer.Message{
		ToEmail:   req.Email,
		ToName:    req.Name,
		Subject:   fmt.Sprintf("Your %d Vedic Horoscope is Ready, %s!", s.year, req.Name),
		HTML:      s.emailBody(req.Name),
		PlainText: fmt.Sprintf("Namaste %s, your personalized Vedic forecast for %d is attached.", req.Name, s.year),
		Attachment: &mailer.Attachment{
			Filename:    s.renderer.Filename(req.Name),
			ContentType: "application/pdf",
			Content:     pdf,
		},
	}

	start := s.now()
	err := s.mail.Send(ctx, msg)
	s.observe("email", start, err)
	if err != nil {
		s.error(ctx, "emailing report failed", err)
	}
	return err
}

func (s *service) emailBody(name string) string {
	return fmt.Sprintf(`<div style="font-family: sans-serif; color: #1a1a1a;">
  <h1 style="color: #d97706;">Namaste, %s</h1>
  <p>Your personalized Vedic forecast for %d is attached.</p>
  <p>We have analyzed your <strong>Janma Kundli</strong> to bring you insights on career, health, and love.</p>
  <br/>
  <p>May the stars guide you.</p>
  <p style="font-size: 12px; color: #666;">Vedic Wisdom Team</p>
</div>`, name, s.year)
}

// step runs fn under duration and success metrics for one pipeline stage.
func (s *service) step(ctx context.Context, name string, fn func() error) error {
	start := s.now()
	err := fn()
	s.observe(name, start, err)
	if err != nil {
		s.error(ctx, name+" failed", err)
	}
	return err
}

func (s *service) observe(step string, start time.Time, err error) {
	if s.met == nil {
		return
	}
	s.met.ObserveDuration(step, s.now().Sub(start))
	if err != nil {
		s.met.IncFailure(step)
	} else {
		s.met.IncSuccess(step)
	}
}

func (s *service) withLead(ctx context.Context, leadID string) context.Context {
	if s.logg == nil {
		return ctx
	}
	return s.logg.WithLeadID(ctx, leadID)
}

func (s *service) info(ctx context.Context, msg string) {
	if s.logg != nil {
		s.logg.Info(ctx, msg)
	}
}

func (s *service) error(ctx context.Context, msg string, err error) {
	if s.logg != nil {
		s.logg.Error(ctx, msg, err)
	}
}
