package orchestrators

import (
	"context"
	"log/slog"

	"junglepark/internal/domain/banner"
)

// BannerStoreForAdmin defines the store interface needed by the banner CRUD
// orchestrators.
type BannerStoreForAdmin interface {
	List(ctx context.Context) ([]banner.Banner, error)
	SaveAll(ctx context.Context, banners []banner.Banner) error
}

// BannerAdminDeps holds dependencies for the banner orchestrators.
type BannerAdminDeps struct {
	BannerStore BannerStoreForAdmin
	GenerateID  func() string
}

// BannerInput carries form input for creating or updating a banner. Which
// extra fields apply depends on the banner type.
type BannerInput struct {
	ID            string // empty on create
	Type          string // consulted on create only; updates keep the stored type
	TitleRU       string
	TitleKK       string
	DescriptionRU string
	DescriptionKK string
	ProgramID     string // seasonal
	CTALabelRU    string // seasonal; defaulted when blank
	CTALabelKK    string // seasonal; defaulted when blank
	MenuItemID    string // discount
}

// ExecuteSaveBanner creates a banner (blank ID) or updates the banner with a
// matching id. The type discriminator decides which variant fields are
// populated; call-to-action labels default when left blank.
// POST: Collection is persisted with the mutation applied
func ExecuteSaveBanner(ctx context.Context, input BannerInput, deps BannerAdminDeps) error {
	banners, err := deps.BannerStore.List(ctx)
	if err != nil {
		return err
	}

	if input.ID == "" {
		b := banner.Banner{
			ID:            deps.GenerateID(),
			Type:          input.Type,
			TitleRU:       input.TitleRU,
			TitleKK:       input.TitleKK,
			DescriptionRU: input.DescriptionRU,
			DescriptionKK: input.DescriptionKK,
		}
		switch input.Type {
		case banner.TypeSeasonal:
			b.ProgramID = input.ProgramID
			b.CTALabelRU = input.CTALabelRU
			b.CTALabelKK = input.CTALabelKK
			b.ApplyCTADefaults()
		case banner.TypeDiscount:
			b.MenuItemID = input.MenuItemID
		}
		banners = append(banners, b)
	} else {
		for i := range banners {
			if banners[i].ID != input.ID {
				continue
			}
			banners[i].TitleRU = input.TitleRU
			banners[i].TitleKK = input.TitleKK
			banners[i].DescriptionRU = input.DescriptionRU
			banners[i].DescriptionKK = input.DescriptionKK
			if banners[i].IsSeasonal() {
				banners[i].ProgramID = input.ProgramID
				banners[i].CTALabelRU = input.CTALabelRU
				banners[i].CTALabelKK = input.CTALabelKK
				banners[i].ApplyCTADefaults()
			} else {
				banners[i].MenuItemID = input.MenuItemID
			}
		}
	}

	if err := deps.BannerStore.SaveAll(ctx, banners); err != nil {
		return err
	}
	slog.Info("catalog_event", "event", "banner_saved", "id", input.ID, "type", input.Type)
	return nil
}

// ExecuteDeleteBanner removes the banner with the given id.
// POST: Collection contains no banner with the given id
func ExecuteDeleteBanner(ctx context.Context, bannerID string, deps BannerAdminDeps) error {
	banners, err := deps.BannerStore.List(ctx)
	if err != nil {
		return err
	}
	kept := banners[:0:0]
	for _, b := range banners {
		if b.ID != bannerID {
			kept = append(kept, b)
		}
	}
	return deps.BannerStore.SaveAll(ctx, kept)
}
