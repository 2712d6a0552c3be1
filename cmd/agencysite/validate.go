package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/agencysite/pkg/contact"
	"github.com/dmitrymomot/agencysite/pkg/registry"
	"github.com/dmitrymomot/agencysite/pkg/validator"
)

// errRejected makes the command exit non-zero after printing the result.
var errRejected = errors.New("input rejected")

func newValidateCmd(flags *rootFlags) *cobra.Command {
	var formName string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a JSON record read from stdin",
		Long: `Reads a JSON object of field names to values from stdin, validates it
against the chosen form and prints the result as JSON. Exits non-zero when
the record is rejected.

  echo '{"email":"a@b.co"}' | agencysite validate --form newsletter`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := contact.ParseKind(formName)
			if err != nil {
				return fmt.Errorf("%w: %q", err, formName)
			}
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			reg, err := registry.FromConfig(cfg.Registry)
			if err != nil {
				return fmt.Errorf("load registry: %w", err)
			}

			var rec validator.Record
			if err := json.NewDecoder(cmd.InOrStdin()).Decode(&rec); err != nil {
				return fmt.Errorf("read record: %w", err)
			}

			schema, err := contact.NewSchemas(reg).For(kind)
			if err != nil {
				return err
			}
			res := validator.ValidateForm(schema, rec)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			if err := enc.Encode(res); err != nil {
				return err
			}
			if !res.Valid() {
				return errRejected
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&formName, "form", string(contact.KindContact), "form to validate against: contact, compact or newsletter")
	return cmd
}
