package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/shop-console/internal/apiclient"
	"github.com/example/shop-console/internal/catalog"
	"github.com/example/shop-console/internal/editor"
	"github.com/example/shop-console/internal/guard"
	"github.com/example/shop-console/internal/model"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the storefront (active products only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoute(cmd, guard.RouteDashboard); err != nil {
			return err
		}
		ensureProfile(cmd)

		view := catalog.NewView(catalog.Storefront, console.api, console.log)
		defer view.Close()
		if err := view.Refresh(cmd.Context()); err != nil {
			return errors.New(apiclient.ErrorMessage(err, "Failed to load products"))
		}

		sess := console.sessions.Current()
		if sess.User != nil {
			fmt.Printf("Welcome back, %s\n\n", sess.User.Email)
		}
		if sess.User.IsAdmin() {
			fmt.Println("Admin panel: 'products', 'product create', 'role assign'")
			fmt.Println()
		}
		printStorefront(view.Products())
		return nil
	},
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage the full catalog, including pending shells",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoute(cmd, guard.RouteProducts); err != nil {
			return err
		}

		view := catalog.NewView(catalog.Admin, console.api, console.log)
		defer view.Close()
		if err := view.Refresh(cmd.Context()); err != nil {
			return errors.New(apiclient.ErrorMessage(err, "Failed to load products"))
		}

		products := view.Products()
		if len(products) == 0 {
			fmt.Println("No products found. Create one to get started.")
			return nil
		}
		fmt.Printf("%-6s %-30s %-10s %s\n", "ID", "TITLE", "CATEGORY", "STATUS")
		for _, p := range products {
			title := p.Title
			if title == "" {
				title = "(no details yet)"
			}
			status := "Pending"
			if p.IsActive {
				status = "Active"
			}
			fmt.Printf("%-6d %-30s %-10d %s\n", p.ID.Int64(), title, p.CategoryID.Int64(), status)
		}
		return nil
	},
}

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Inspect and manage individual products",
}

var productShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a product's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		product, err := console.api.GetProduct(cmd.Context(), id)
		if err != nil {
			return errors.New(apiclient.ErrorMessage(err, "Product not found"))
		}
		printProduct(product)
		return nil
	},
}

var (
	createCategoryID  int64
	detailTitle       string
	detailCode        string
	detailVariation   string
	detailDescription string
	detailAbout       string
)

var productCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product: shell first, then details",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoute(cmd, guard.RouteCreateProduct); err != nil {
			return err
		}

		flow := editor.NewFlow(console.api)
		if err := flow.SubmitCategory(cmd.Context(), createCategoryID); err != nil {
			return errors.New(apiclient.ErrorMessage(err, err.Error()))
		}
		fmt.Printf("Created product shell #%d\n", flow.ProductID())

		if detailTitle == "" && detailCode == "" && detailDescription == "" && detailAbout == "" {
			fmt.Println("No details given; attach them later with 'product details'.")
			return nil
		}

		err := flow.SubmitDetails(cmd.Context(), editor.Details{
			Title:         detailTitle,
			Code:          detailCode,
			VariationType: model.VariationType(detailVariation),
			Description:   detailDescription,
			About:         detailAbout,
		})
		if err != nil {
			return errors.New(apiclient.ErrorMessage(err, "Error processing step"))
		}
		fmt.Printf("Product #%d complete. View it with 'product show %d'.\n", flow.ProductID(), flow.ProductID())
		return nil
	},
}

var productDetailsCmd = &cobra.Command{
	Use:   "details <id>",
	Short: "Attach or update a product's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoute(cmd, guard.RouteProducts); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		variation := model.VariationType(detailVariation)
		if variation == "" {
			variation = model.VariationNone
		}
		_, err = console.api.AddProductDetails(cmd.Context(), id, model.ProductDetailsPayload{
			Title:         detailTitle,
			Code:          detailCode,
			VariationType: variation,
			Description:   detailDescription,
			About:         editor.SplitAbout(detailAbout),
		})
		if err != nil {
			return errors.New(apiclient.ErrorMessage(err, "Failed to update details"))
		}
		fmt.Printf("Product #%d details updated.\n", id)
		return nil
	},
}

var productActivateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Make a product publicly visible (one-way)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoute(cmd, guard.RouteProducts); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if _, err := console.api.ActivateProduct(cmd.Context(), id); err != nil {
			return errors.New(apiclient.ErrorMessage(err, "Failed to activate product"))
		}
		fmt.Printf("Product #%d activated.\n", id)
		return nil
	},
}

var productDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product permanently (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoute(cmd, guard.RouteDeleteProduct); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := console.api.DeleteProduct(cmd.Context(), id); err != nil {
			return errors.New(apiclient.ErrorMessage(err, "Failed to delete product"))
		}
		fmt.Printf("Product #%d deleted.\n", id)
		return nil
	},
}

func printStorefront(products []model.Product) {
	fmt.Println("Available Products")
	if len(products) == 0 {
		fmt.Println("No active products available at the moment.")
		return
	}
	for _, p := range products {
		title := p.Title
		if title == "" {
			title = "Untitled Product"
		}
		code := p.Code
		if code == "" {
			code = "N/A"
		}
		fmt.Printf("  #%-5d %-30s code=%s\n", p.ID.Int64(), title, code)
	}
}

func printProduct(p *model.Product) {
	status := "Pending"
	if p.IsActive {
		status = "Active"
	}
	fmt.Printf("Product #%d [%s]\n", p.ID.Int64(), status)
	if p.Title != "" {
		fmt.Printf("  Title:       %s\n", p.Title)
	}
	if p.Code != "" {
		fmt.Printf("  Code:        %s\n", p.Code)
	}
	if p.CategoryID != 0 {
		fmt.Printf("  Category:    %d\n", p.CategoryID.Int64())
	}
	if p.VariationType != "" {
		fmt.Printf("  Variation:   %s\n", p.VariationType)
	}
	if p.Description != "" {
		fmt.Printf("  Description: %s\n", p.Description)
	}
	if len(p.About) > 0 {
		fmt.Printf("  About:\n")
		for _, line := range p.About {
			fmt.Printf("    - %s\n", line)
		}
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(arg, "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product id %q", arg)
	}
	return id, nil
}

func init() {
	productCreateCmd.Flags().Int64Var(&createCategoryID, "category", 0, "category id (required)")
	for _, cmd := range []*cobra.Command{productCreateCmd, productDetailsCmd} {
		cmd.Flags().StringVar(&detailTitle, "title", "", "product title")
		cmd.Flags().StringVar(&detailCode, "code", "", "product code")
		cmd.Flags().StringVar(&detailVariation, "variation", string(model.VariationNone), "variation type: NONE, OnlySize, OnlyColor, SizeAndColor")
		cmd.Flags().StringVar(&detailDescription, "description", "", "product description")
		cmd.Flags().StringVar(&detailAbout, "about", "", "about lines, one per line")
	}

	productCmd.AddCommand(productShowCmd, productCreateCmd, productDetailsCmd, productActivateCmd, productDeleteCmd)
	rootCmd.AddCommand(dashboardCmd, productsCmd, productCmd)
}
