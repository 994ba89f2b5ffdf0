package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/contentkeeper/internal/models"
)

var templateUsage = "Usage: contentkeeper template <add|list|delete> [id]"

func (c *Cli) runTemplate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. %s", templateUsage)
	}

	switch args[0] {
	case "add":
		return c.runTemplateAdd(ctx)
	case "list":
		return c.runTemplateList(ctx)
	case "delete":
		return c.runTemplateDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s. %s", args[0], templateUsage)
	}
}

func (c *Cli) runTemplateAdd(ctx context.Context) error {
	c.io.Println("=== Add Template ===")
	c.io.Println()

	name, err := c.io.ReadInput("Name (e.g., 'Article', 'Product Card'): ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	schema, err := c.io.ReadInput("Schema (JSON, optional): ")
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}
	if schema != "" && !json.Valid([]byte(schema)) {
		return fmt.Errorf("schema must be valid JSON")
	}

	template := &models.Template{
		Name:   name,
		Schema: schema,
	}

	if err := c.dataService.AddTemplate(ctx, template); err != nil {
		return fmt.Errorf("failed to add template: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Template added!")
	c.io.Printf("ID:   %s\n", template.ID)
	c.io.Printf("Name: %s\n", template.Name)
	c.io.Println()
	c.io.Println("The change is queued and will reach the server on next sync.")

	return nil
}

func (c *Cli) runTemplateList(ctx context.Context) error {
	c.io.Println("=== Templates ===")
	c.io.Println()

	templates, err := c.dataService.ListTemplates(ctx)
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}

	if len(templates) == 0 {
		c.io.Println("No templates found.")
		c.io.Println()
		c.io.Println("Use 'contentkeeper template add' to create your first template.")
		return nil
	}

	c.io.Printf("Found %d template(s):\n", len(templates))
	c.io.Println()

	for i, t := range templates {
		c.io.Printf("%d. %s\n", i+1, t.Name)
		c.io.Printf("   ID: %s\n", t.ID)
		if t.Schema != "" {
			c.io.Printf("   Schema: %s\n", t.Schema)
		}
		c.io.Println()
	}

	return nil
}

func (c *Cli) runTemplateDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing template ID. Usage: contentkeeper template delete <id>")
	}
	templateID := args[0]

	c.io.Println("=== Delete Template ===")
	c.io.Println()

	template, err := c.dataService.GetTemplate(ctx, templateID)
	if err != nil {
		return fmt.Errorf("failed to get template: %w", err)
	}

	c.io.Println("About to delete:")
	c.io.Printf("  Name: %s\n", template.Name)
	c.io.Println()

	confirmed, err := c.io.Confirm("Delete this template?")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !confirmed {
		c.io.Println("Deletion cancelled.")
		return nil
	}

	if err := c.dataService.DeleteTemplate(ctx, templateID); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Template deleted!")
	c.io.Println("The deletion is queued and will reach the server on next sync.")

	return nil
}
