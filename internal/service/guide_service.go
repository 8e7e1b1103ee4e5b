package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/devicedigihelp/backend/internal/audiostore"
	"github.com/devicedigihelp/backend/internal/domain"
	"github.com/devicedigihelp/backend/internal/genai"
	"github.com/devicedigihelp/backend/internal/imagesearch"
	"github.com/devicedigihelp/backend/internal/mail"
	"github.com/devicedigihelp/backend/internal/tts"
)

// manualRepository is the subset of store.ManualStore that GuideService requires.
type manualRepository interface {
	Create(ctx context.Context, deviceName, manualText, language, source, imageURL, audioFile string) (*domain.ManualRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.ManualRecord, error)
}

// contactRepository is the subset of store.ContactStore that GuideService requires.
type contactRepository interface {
	Create(ctx context.Context, name, email, message string, emailSent bool) (*domain.ContactSubmission, error)
}

// ManualResult is the outcome of a manual generation request. ImageURL is
// empty when no product image was looked up or the lookup found nothing.
type ManualResult struct {
	DeviceName string
	ManualText string
	ImageURL   string
}

// LegacyManual is the outcome of the original process_device_image flow:
// a plain-text numbered guide plus an optional narrated audio file.
type LegacyManual struct {
	DeviceName string
	ManualBody string
	AudioFile  string
}

type GuideService struct {
	generator genai.Generator
	speech    tts.Synthesizer // nil disables audio generation
	search    imagesearch.Searcher
	mailer    mail.Relay
	audio     audiostore.Store
	manuals   manualRepository
	contacts  contactRepository
	logger    *slog.Logger
}

func NewGuideService(
	generator genai.Generator,
	speech tts.Synthesizer,
	search imagesearch.Searcher,
	mailer mail.Relay,
	audio audiostore.Store,
	manuals manualRepository,
	contacts contactRepository,
	logger *slog.Logger,
) *GuideService {
	return &GuideService{
		generator: generator,
		speech:    speech,
		search:    search,
		mailer:    mailer,
		audio:     audio,
		manuals:   manuals,
		contacts:  contacts,
		logger:    logger,
	}
}

// GenerateManualFromImage identifies the device in the image and returns the
// full generated guide. No product image lookup happens on this path; the
// photo the user sent is the picture they already have.
func (s *GuideService) GenerateManualFromImage(ctx context.Context, image []byte, mimeType, language string) (*ManualResult, error) {
	s.logger.Info("manual generation started", "source", domain.SourceImage, "mime_type", mimeType, "bytes", len(image), "language", language)

	raw, err := s.generator.Generate(ctx, &genai.Request{
		System:    genai.ManualFromImagePrompt(language),
		Text:      genai.ManualUserPrompt,
		Image:     image,
		ImageMIME: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate manual: %w", err)
	}

	device, _ := genai.SplitManual(raw)
	s.logger.Info("manual generation complete", "source", domain.SourceImage, "device", device)

	s.recordManual(ctx, device, raw, language, domain.SourceImage, "", "")
	return &ManualResult{DeviceName: device, ManualText: raw}, nil
}

// GenerateManualFromText writes a guide for a device the user named and, when
// possible, attaches a representative product image. Lookup failures degrade
// to an empty URL rather than failing the request.
func (s *GuideService) GenerateManualFromText(ctx context.Context, query, language string) (*ManualResult, error) {
	s.logger.Info("manual generation started", "source", domain.SourceText, "query", query, "language", language)

	raw, err := s.generator.Generate(ctx, &genai.Request{
		System: genai.ManualFromTextPrompt(language),
		Text:   query,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate manual: %w", err)
	}

	device, _ := genai.SplitManual(raw)

	imageURL := ""
	if url, err := s.search.FirstImageURL(ctx, device); err != nil {
		s.logger.Error("image lookup failed", "device", device, "error", err)
	} else {
		imageURL = url
	}

	s.logger.Info("manual generation complete", "source", domain.SourceText, "device", device, "image_found", imageURL != "")

	s.recordManual(ctx, device, raw, language, domain.SourceText, imageURL, "")
	return &ManualResult{DeviceName: device, ManualText: raw, ImageURL: imageURL}, nil
}

// AskFollowUp answers a single-turn question about an already-identified
// device. image is optional; when present it gives the model fresh context.
func (s *GuideService) AskFollowUp(ctx context.Context, device, question, language string, image []byte, mimeType string) (string, error) {
	s.logger.Info("follow-up started", "device", device, "language", language, "has_image", len(image) > 0)

	answer, err := s.generator.Generate(ctx, &genai.Request{
		System:    genai.FollowUpPrompt(language),
		Text:      genai.FollowUpUserPrompt(device, question),
		Image:     image,
		ImageMIME: mimeType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to answer follow-up: %w", err)
	}

	s.logger.Info("follow-up complete", "device", device)
	return answer, nil
}

// ProcessDeviceImage runs the original plain-text flow: identify the device,
// split the guide off the first line, and narrate it to an mp3. Audio
// generation is best-effort; a synthesis or storage failure leaves AudioFile
// empty without failing the request.
func (s *GuideService) ProcessDeviceImage(ctx context.Context, image []byte, mimeType string) (*LegacyManual, error) {
	s.logger.Info("manual generation started", "source", domain.SourceLegacy, "mime_type", mimeType, "bytes", len(image))

	raw, err := s.generator.Generate(ctx, &genai.Request{
		System:    genai.LegacyManualPrompt,
		Text:      genai.ManualUserPrompt,
		Image:     image,
		ImageMIME: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate manual: %w", err)
	}

	device, body := genai.SplitManual(raw)
	s.logger.Info("manual generation complete", "source", domain.SourceLegacy, "device", device)

	audioFile := s.narrate(ctx, body)

	s.recordManual(ctx, device, body, "English", domain.SourceLegacy, "", audioFile)
	return &LegacyManual{DeviceName: device, ManualBody: body, AudioFile: audioFile}, nil
}

// narrate converts the guide body to speech and stores it, returning the
// stored filename or "" when synthesis is disabled or fails.
func (s *GuideService) narrate(ctx context.Context, body string) string {
	if s.speech == nil {
		return ""
	}

	audio, err := s.speech.Synthesize(ctx, body)
	if err != nil {
		s.logger.Error("speech synthesis failed", "error", err)
		return ""
	}

	filename, err := s.audio.Save(ctx, audio)
	if err != nil {
		s.logger.Error("failed to save audio file", "error", err)
		return ""
	}

	s.logger.Debug("audio file saved", "filename", filename, "bytes", len(audio))
	return filename
}

// SubmitContact relays a contact-form submission by email. Delivery is
// fire-and-forget: a failed send is logged and reflected in the returned
// flag, never surfaced to the submitting user.
func (s *GuideService) SubmitContact(ctx context.Context, name, email, message string) bool {
	subject := "New Contact Form Submission from DigiHelp"
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", name, email, message)

	sent := true
	if err := s.mailer.Send(ctx, subject, body, email); err != nil {
		s.logger.Error("failed to send contact email", "error", err)
		sent = false
	}

	if _, err := s.contacts.Create(ctx, name, email, message, sent); err != nil {
		s.logger.Error("failed to record contact submission", "error", err)
	}

	s.logger.Info("contact submission handled", "email_sent", sent)
	return sent
}

// SubmitChat relays a chat-widget message by email, fire-and-forget.
func (s *GuideService) SubmitChat(ctx context.Context, message string) bool {
	subject := "New Chat Message from DigiHelp"

	sent := true
	if err := s.mailer.Send(ctx, subject, message, ""); err != nil {
		s.logger.Error("failed to send chat email", "error", err)
		sent = false
	}

	if _, err := s.contacts.Create(ctx, "", "", message, sent); err != nil {
		s.logger.Error("failed to record chat submission", "error", err)
	}

	s.logger.Info("chat submission handled", "email_sent", sent)
	return sent
}

func (s *GuideService) RecentManuals(ctx context.Context, limit int) ([]*domain.ManualRecord, error) {
	return s.manuals.ListRecent(ctx, limit)
}

// recordManual persists a history row. History is observability, not part of
// the request contract, so failures are logged and swallowed.
func (s *GuideService) recordManual(ctx context.Context, device, text, language, source, imageURL, audioFile string) {
	if _, err := s.manuals.Create(ctx, device, text, language, source, imageURL, audioFile); err != nil {
		s.logger.Error("failed to record manual", "device", device, "source", source, "error", err)
	}
}
