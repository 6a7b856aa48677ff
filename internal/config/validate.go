package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/julianstephens/plantcheck/internal/i18n"
	"github.com/julianstephens/plantcheck/internal/models"
	"github.com/julianstephens/plantcheck/internal/storage"
)

// Validate checks business rules on the loaded configuration and reports
// every problem at once. Load calls it; Read does not.
func (c *Config) Validate() error {
	var errs []error

	if c.Catalog.PageSize < 1 {
		errs = append(errs, fmt.Errorf("catalog.page_size must be >= 1 (got %d)", c.Catalog.PageSize))
	}
	if c.Catalog.LoadMoreStep < 1 {
		errs = append(errs, fmt.Errorf("catalog.load_more_step must be >= 1 (got %d)", c.Catalog.LoadMoreStep))
	}

	if c.Checklist.SubmissionDelay < 0 {
		errs = append(errs, fmt.Errorf("checklist.submission_delay must not be negative (got %s)", c.Checklist.SubmissionDelay))
	}
	if err := validateTemplate(c.Checklist.Template); err != nil {
		errs = append(errs, fmt.Errorf("checklist.template: %w", err))
	}

	if _, err := models.ParseConnectivityMode(c.Session.Connectivity); err != nil {
		errs = append(errs, fmt.Errorf("session.connectivity: %w", err))
	}
	if !i18n.Supported(c.Session.Language) {
		errs = append(errs, fmt.Errorf("session.language %q is not one of %s", c.Session.Language, strings.Join(i18n.Codes(), ", ")))
	}

	if !slices.Contains(storage.Drivers, c.Storage.Driver) {
		errs = append(errs, fmt.Errorf("storage.driver %q is not one of %s", c.Storage.Driver, strings.Join(storage.Drivers, ", ")))
	}

	return errors.Join(errs...)
}

func validateTemplate(items []models.ChecklistTemplateItem) error {
	if len(items) == 0 {
		return fmt.Errorf("at least one item is required")
	}
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		if strings.TrimSpace(item.ID) == "" {
			return fmt.Errorf("item %d has no id", i)
		}
		if seen[item.ID] {
			return fmt.Errorf("duplicate item id %q", item.ID)
		}
		seen[item.ID] = true
		if strings.TrimSpace(item.Title) == "" {
			return fmt.Errorf("item %q has no title", item.ID)
		}
	}
	return nil
}
