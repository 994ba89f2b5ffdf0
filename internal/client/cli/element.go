package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/contentkeeper/internal/models"
)

var elementUsage = "Usage: contentkeeper element <add|list|delete> [args]"

func (c *Cli) runElement(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. %s", elementUsage)
	}

	switch args[0] {
	case "add":
		return c.runElementAdd(ctx)
	case "list":
		return c.runElementList(ctx, args[1:])
	case "delete":
		return c.runElementDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s. %s", args[0], elementUsage)
	}
}

func (c *Cli) runElementAdd(ctx context.Context) error {
	c.io.Println("=== Add Element ===")
	c.io.Println()

	projectID, err := c.io.ReadInput("Project ID: ")
	if err != nil {
		return fmt.Errorf("failed to read project ID: %w", err)
	}
	if projectID == "" {
		return fmt.Errorf("project ID cannot be empty")
	}

	// Проверяем что проект существует, иначе элемент повиснет без владельца
	if _, err := c.dataService.GetProject(ctx, projectID); err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	kind, err := c.io.ReadInput("Kind (text/image/section, default text): ")
	if err != nil {
		return fmt.Errorf("failed to read kind: %w", err)
	}
	if kind == "" {
		kind = "text"
	}

	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	body, err := c.io.ReadInput("Body (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	positionStr, err := c.io.ReadInput("Position (number, default 0): ")
	if err != nil {
		return fmt.Errorf("failed to read position: %w", err)
	}
	position := 0
	if positionStr != "" {
		position, err = strconv.Atoi(positionStr)
		if err != nil {
			return fmt.Errorf("position must be a number: %w", err)
		}
	}

	element := &models.Element{
		ProjectID: projectID,
		Kind:      kind,
		Title:     title,
		Body:      body,
		Position:  position,
	}

	if err := c.dataService.AddElement(ctx, element); err != nil {
		return fmt.Errorf("failed to add element: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Element added!")
	c.io.Printf("ID:    %s\n", element.ID)
	c.io.Printf("Title: %s\n", element.Title)
	c.io.Println()
	c.io.Println("The change is queued and will reach the server on next sync.")

	return nil
}

func (c *Cli) runElementList(ctx context.Context, args []string) error {
	c.io.Println("=== Elements ===")
	c.io.Println()

	// Без аргумента показываем элементы всех проектов
	projectID := ""
	if len(args) > 0 {
		projectID = args[0]
	}

	elements, err := c.dataService.ListElements(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to list elements: %w", err)
	}

	if len(elements) == 0 {
		c.io.Println("No elements found.")
		c.io.Println()
		c.io.Println("Use 'contentkeeper element add' to create your first element.")
		return nil
	}

	c.io.Printf("Found %d element(s):\n", len(elements))
	c.io.Println()

	for i, e := range elements {
		c.io.Printf("%d. [%s] %s\n", i+1, e.Kind, e.Title)
		c.io.Printf("   ID:       %s\n", e.ID)
		c.io.Printf("   Project:  %s\n", e.ProjectID)
		c.io.Printf("   Position: %d\n", e.Position)
		c.io.Println()
	}

	return nil
}

func (c *Cli) runElementDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing element ID. Usage: contentkeeper element delete <id>")
	}
	elementID := args[0]

	c.io.Println("=== Delete Element ===")
	c.io.Println()

	element, err := c.dataService.GetElement(ctx, elementID)
	if err != nil {
		return fmt.Errorf("failed to get element: %w", err)
	}

	c.io.Println("About to delete:")
	c.io.Printf("  Title:   %s\n", element.Title)
	c.io.Printf("  Project: %s\n", element.ProjectID)
	c.io.Println()

	confirmed, err := c.io.Confirm("Delete this element?")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !confirmed {
		c.io.Println("Deletion cancelled.")
		return nil
	}

	if err := c.dataService.DeleteElement(ctx, elementID); err != nil {
		return fmt.Errorf("failed to delete element: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Element deleted!")
	c.io.Println("The deletion is queued and will reach the server on next sync.")

	return nil
}
