package orchestrators

import (
	"context"
	"log/slog"

	"junglepark/internal/domain/catalog"
)

// MenuStoreForAdmin defines the store interface needed by the menu CRUD
// orchestrators.
type MenuStoreForAdmin interface {
	List(ctx context.Context) ([]catalog.MenuItem, error)
	SaveAll(ctx context.Context, items []catalog.MenuItem) error
}

// ProgramStoreForAdmin defines the store interface needed by the program
// CRUD orchestrators.
type ProgramStoreForAdmin interface {
	List(ctx context.Context) ([]catalog.Program, error)
	SaveAll(ctx context.Context, programs []catalog.Program) error
}

// CatalogDeps holds dependencies for the catalog orchestrators.
type CatalogDeps struct {
	MenuStore    MenuStoreForAdmin
	ProgramStore ProgramStoreForAdmin
	GenerateID   func() string
}

// MenuItemInput carries form input for creating or updating a menu item.
type MenuItemInput struct {
	ID            string // empty on create
	TitleRU       string
	TitleKK       string
	DescriptionRU string
	DescriptionKK string
	Price         int
	Available     bool
}

// ExecuteSaveMenuItem creates a menu item (blank ID) or updates the item
// with a matching id. Updates against an unknown id rewrite nothing but are
// not an error, per the original behaviour.
// POST: Collection is persisted with the mutation applied
func ExecuteSaveMenuItem(ctx context.Context, input MenuItemInput, deps CatalogDeps) error {
	items, err := deps.MenuStore.List(ctx)
	if err != nil {
		return err
	}

	if input.ID == "" {
		items = append(items, catalog.MenuItem{
			ID:          deps.GenerateID(),
			Title:       catalog.Localized{"ru": input.TitleRU, "kk": input.TitleKK},
			Description: catalog.Localized{"ru": input.DescriptionRU, "kk": input.DescriptionKK},
			Price:       input.Price,
			Available:   input.Available,
		})
	} else {
		for i := range items {
			if items[i].ID == input.ID {
				items[i].Title = catalog.Localized{"ru": input.TitleRU, "kk": input.TitleKK}
				items[i].Description = catalog.Localized{"ru": input.DescriptionRU, "kk": input.DescriptionKK}
				items[i].Price = input.Price
				items[i].Available = input.Available
			}
		}
	}

	if err := deps.MenuStore.SaveAll(ctx, items); err != nil {
		return err
	}
	slog.Info("catalog_event", "event", "menu_saved", "id", input.ID)
	return nil
}

// ExecuteDeleteMenuItem removes the menu item with the given id.
// POST: Collection contains no item with the given id
func ExecuteDeleteMenuItem(ctx context.Context, itemID string, deps CatalogDeps) error {
	items, err := deps.MenuStore.List(ctx)
	if err != nil {
		return err
	}
	kept := items[:0:0]
	for _, item := range items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	return deps.MenuStore.SaveAll(ctx, kept)
}

// ProgramInput carries form input for creating or updating a program.
type ProgramInput struct {
	ID            string // empty on create
	TitleRU       string
	TitleKK       string
	DescriptionRU string
	DescriptionKK string
	Price         int
	Available     bool
	CostumesRaw   string // comma-separated
}

// ExecuteSaveProgram creates a program (blank ID) or updates the program
// with a matching id.
// POST: Collection is persisted with the mutation applied
func ExecuteSaveProgram(ctx context.Context, input ProgramInput, deps CatalogDeps) error {
	programs, err := deps.ProgramStore.List(ctx)
	if err != nil {
		return err
	}

	costumes := catalog.ParseCostumes(input.CostumesRaw)
	if input.ID == "" {
		programs = append(programs, catalog.Program{
			ID:          deps.GenerateID(),
			Title:       catalog.Localized{"ru": input.TitleRU, "kk": input.TitleKK},
			Description: catalog.Localized{"ru": input.DescriptionRU, "kk": input.DescriptionKK},
			Price:       input.Price,
			Available:   input.Available,
			Costumes:    costumes,
		})
	} else {
		for i := range programs {
			if programs[i].ID == input.ID {
				programs[i].Title = catalog.Localized{"ru": input.TitleRU, "kk": input.TitleKK}
				programs[i].Description = catalog.Localized{"ru": input.DescriptionRU, "kk": input.DescriptionKK}
				programs[i].Price = input.Price
				programs[i].Available = input.Available
				programs[i].Costumes = costumes
			}
		}
	}

	if err := deps.ProgramStore.SaveAll(ctx, programs); err != nil {
		return err
	}
	slog.Info("catalog_event", "event", "program_saved", "id", input.ID)
	return nil
}

// ExecuteDeleteProgram removes the program with the given id.
// POST: Collection contains no program with the given id
func ExecuteDeleteProgram(ctx context.Context, programID string, deps CatalogDeps) error {
	programs, err := deps.ProgramStore.List(ctx)
	if err != nil {
		return err
	}
	kept := programs[:0:0]
	for _, p := range programs {
		if p.ID != programID {
			kept = append(kept, p)
		}
	}
	return deps.ProgramStore.SaveAll(ctx, kept)
}
