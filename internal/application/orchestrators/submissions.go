package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"junglepark/internal/domain/banner"
	"junglepark/internal/domain/catalog"
	"junglepark/internal/domain/notification"
	"junglepark/internal/domain/settings"
)

// Submission errors map onto the public API error codes.
var (
	ErrMissingFields = errors.New("missing_fields")
	ErrUnknownBanner = errors.New("unknown_banner")
)

// SettingsStoreForSubmissions defines the settings access needed to resolve
// the recipient contact numbers.
type SettingsStoreForSubmissions interface {
	Get(ctx context.Context) (settings.Settings, error)
}

// NotificationLogForSubmissions defines the append-only log sink.
type NotificationLogForSubmissions interface {
	Append(ctx context.Context, entry notification.Entry) error
}

// NotificationSender delivers the message to the external channel.
// Delivery is best effort: failures are logged, never surfaced.
type NotificationSender interface {
	Send(ctx context.Context, message string) error
}

// ProgramStoreForSubmissions defines program lookup for booking requests.
type ProgramStoreForSubmissions interface {
	List(ctx context.Context) ([]catalog.Program, error)
}

// BannerStoreForSubmissions defines banner lookup for banner signups.
type BannerStoreForSubmissions interface {
	List(ctx context.Context) ([]banner.Banner, error)
}

// SubmissionDeps holds dependencies shared by the public submission
// orchestrators.
type SubmissionDeps struct {
	SettingsStore SettingsStoreForSubmissions
	ProgramStore  ProgramStoreForSubmissions
	BannerStore   BannerStoreForSubmissions
	Log           NotificationLogForSubmissions
	Sender        NotificationSender
	Now           func() time.Time
}

// SubmissionResult names the contact number that will handle the request.
type SubmissionResult struct {
	Recipient string
}

// OrderInput carries a public food-order submission.
type OrderInput struct {
	Items   []string
	Total   string
	Address string
	Phone   string
	Lang    string
}

// ExecuteSubmitOrder validates the order, records exactly one notification
// log entry, and returns the café contact number.
// POST: On success the log has one new entry embedding every submitted field
func ExecuteSubmitOrder(ctx context.Context, input OrderInput, deps SubmissionDeps) (SubmissionResult, error) {
	total := strings.TrimSpace(input.Total)
	address := strings.TrimSpace(input.Address)
	phone := strings.TrimSpace(input.Phone)
	// "0" is a present total: zero-priced carts are accepted.
	if len(input.Items) == 0 || total == "" || address == "" || phone == "" {
		return SubmissionResult{}, ErrMissingFields
	}

	cfg, err := deps.SettingsStore.Get(ctx)
	if err != nil {
		return SubmissionResult{}, err
	}

	message := fmt.Sprintf(
		"📦 Новый заказ из кафе Jungle Park:\nПозиции: %s\nОбщая сумма: %s тг\nАдрес: %s\nТелефон клиента: %s",
		strings.Join(input.Items, ", "), total, address, phone)

	if err := deps.record(ctx, message); err != nil {
		return SubmissionResult{}, err
	}
	return SubmissionResult{Recipient: cfg.CafeNumber}, nil
}

// ProgramRequestInput carries a public program booking request.
type ProgramRequestInput struct {
	ProgramID string
	Name      string
	ChildName string
	Date      string
	Phone     string
	Lang      string
}

// ExecuteProgramRequest validates the booking, resolves the program title in
// the active language (falling back to Russian, then the program id), logs
// one notification, and returns the cashier contact number.
// POST: On success the log has exactly one new entry
func ExecuteProgramRequest(ctx context.Context, input ProgramRequestInput, deps SubmissionDeps) (SubmissionResult, error) {
	name := strings.TrimSpace(input.Name)
	childName := strings.TrimSpace(input.ChildName)
	date := strings.TrimSpace(input.Date)
	phone := strings.TrimSpace(input.Phone)

	programs, err := deps.ProgramStore.List(ctx)
	if err != nil {
		return SubmissionResult{}, err
	}
	var program *catalog.Program
	for i := range programs {
		if programs[i].ID == input.ProgramID {
			program = &programs[i]
			break
		}
	}
	// An unknown program reads as a missing field, same as blank input.
	if program == nil || name == "" || childName == "" || date == "" || phone == "" {
		return SubmissionResult{}, ErrMissingFields
	}

	title := program.Title.Get(input.Lang, program.ID)
	message := fmt.Sprintf(
		"🎉 Новая заявка на программу Jungle Park:\nПрограмма: %s\nИмя ребёнка: %s\nДата: %s\nКонтакт: %s",
		title, childName, date, phone)

	if err := deps.record(ctx, message); err != nil {
		return SubmissionResult{}, err
	}

	cfg, err := deps.SettingsStore.Get(ctx)
	if err != nil {
		return SubmissionResult{}, err
	}
	return SubmissionResult{Recipient: cfg.CashierNumber}, nil
}

// BannerSignupInput carries a public signup against a seasonal banner.
type BannerSignupInput struct {
	BannerID   string
	ChildName  string
	ParentName string
	Age        string
	Phone      string
	Lang       string
}

// ExecuteBannerSignup validates the signup, requires the banner id to exist
// among seasonal banners, logs one notification, and returns the cashier
// contact number. The banner title falls back from the active language to
// Russian to the banner id.
// POST: On success the log has exactly one new entry
func ExecuteBannerSignup(ctx context.Context, input BannerSignupInput, deps SubmissionDeps) (SubmissionResult, error) {
	childName := strings.TrimSpace(input.ChildName)
	parentName := strings.TrimSpace(input.ParentName)
	age := strings.TrimSpace(input.Age)
	phone := strings.TrimSpace(input.Phone)
	if childName == "" || parentName == "" || age == "" || phone == "" {
		return SubmissionResult{}, ErrMissingFields
	}

	banners, err := deps.BannerStore.List(ctx)
	if err != nil {
		return SubmissionResult{}, err
	}
	var target *banner.Banner
	for i := range banners {
		if banners[i].IsSeasonal() && banners[i].ID == input.BannerID {
			target = &banners[i]
			break
		}
	}
	if target == nil {
		return SubmissionResult{}, ErrUnknownBanner
	}

	message := fmt.Sprintf(
		"🎉 Новая заявка на программу Jungle Park:\nПрограмма: %s\nИмя ребёнка: %s\nВозраст: %s\nКонтакт: %s\nФИ родителя: %s",
		target.Title(input.Lang), childName, age, phone, parentName)

	if err := deps.record(ctx, message); err != nil {
		return SubmissionResult{}, err
	}

	cfg, err := deps.SettingsStore.Get(ctx)
	if err != nil {
		return SubmissionResult{}, err
	}
	return SubmissionResult{Recipient: cfg.CashierNumber}, nil
}

// record appends to the durable log, then hands the message to the external
// channel. A sender failure never fails the request.
func (d SubmissionDeps) record(ctx context.Context, message string) error {
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	if err := d.Log.Append(ctx, notification.NewEntry(message, now())); err != nil {
		return err
	}
	if d.Sender != nil {
		if err := d.Sender.Send(ctx, message); err != nil {
			slog.Error("notify_send_failed", "error", err)
		}
	}
	return nil
}
