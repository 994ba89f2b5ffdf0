package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/contentkeeper/internal/models"
)

var projectUsage = "Usage: contentkeeper project <add|list|delete> [id]"

func (c *Cli) runProject(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. %s", projectUsage)
	}

	switch args[0] {
	case "add":
		return c.runProjectAdd(ctx)
	case "list":
		return c.runProjectList(ctx)
	case "delete":
		return c.runProjectDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s. %s", args[0], projectUsage)
	}
}

func (c *Cli) runProjectAdd(ctx context.Context) error {
	c.io.Println("=== Add Project ===")
	c.io.Println()

	name, err := c.io.ReadInput("Name (e.g., 'Blog', 'Landing Page'): ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	description, err := c.io.ReadInput("Description (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	status, err := c.io.ReadInput("Status (draft/active/archived, default draft): ")
	if err != nil {
		return fmt.Errorf("failed to read status: %w", err)
	}
	if status == "" {
		status = "draft"
	}

	project := &models.Project{
		Name:        name,
		Description: description,
		Status:      status,
	}

	if err := c.dataService.AddProject(ctx, project); err != nil {
		return fmt.Errorf("failed to add project: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Project added!")
	c.io.Printf("ID:   %s\n", project.ID)
	c.io.Printf("Name: %s\n", project.Name)
	c.io.Println()
	c.io.Println("The change is queued and will reach the server on next sync.")

	return nil
}

func (c *Cli) runProjectList(ctx context.Context) error {
	c.io.Println("=== Projects ===")
	c.io.Println()

	projects, err := c.dataService.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	if len(projects) == 0 {
		c.io.Println("No projects found.")
		c.io.Println()
		c.io.Println("Use 'contentkeeper project add' to create your first project.")
		return nil
	}

	c.io.Printf("Found %d project(s):\n", len(projects))
	c.io.Println()

	for i, p := range projects {
		c.io.Printf("%d. %s\n", i+1, p.Name)
		c.io.Printf("   ID:     %s\n", p.ID)
		c.io.Printf("   Status: %s\n", p.Status)
		if p.Description != "" {
			c.io.Printf("   Descr:  %s\n", p.Description)
		}
		c.io.Println()
	}

	return nil
}

func (c *Cli) runProjectDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing project ID. Usage: contentkeeper project delete <id>")
	}
	projectID := args[0]

	c.io.Println("=== Delete Project ===")
	c.io.Println()

	project, err := c.dataService.GetProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	c.io.Println("About to delete:")
	c.io.Printf("  Name:   %s\n", project.Name)
	c.io.Printf("  Status: %s\n", project.Status)
	c.io.Println()

	confirmed, err := c.io.Confirm("Delete this project?")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !confirmed {
		c.io.Println("Deletion cancelled.")
		return nil
	}

	if err := c.dataService.DeleteProject(ctx, projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Project deleted!")
	c.io.Println("The deletion is queued and will reach the server on next sync.")

	return nil
}
