// ABOUTME: Resource commands for brands, categories, sizes, products, stock, orders, banners
// ABOUTME: Every command here is protected and needs a stored session

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/catalog"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/resource"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/styles"
	"github.com/spf13/cobra"
)

// List filters
var (
	activeOnly     bool
	filterCategory string
	filterProduct  string
	filterStatus   string
	filterSizeType string
)

// resourceGroup describes one catalog collection
type resourceGroup struct {
	name   string
	list   func(ctx context.Context, cat *catalog.Catalog) (any, resource.Listing, error)
	get    func(ctx context.Context, cat *catalog.Catalog, id string) (any, error)
	remove func(ctx context.Context, cat *catalog.Catalog, id string) error
	flags  func(cmd *cobra.Command)
}

// listOf adapts a typed list call and its table shape
func listOf[T any](fetch func(context.Context, *catalog.Catalog) ([]T, error), shape func([]T) resource.Listing) func(context.Context, *catalog.Catalog) (any, resource.Listing, error) {
	return func(ctx context.Context, cat *catalog.Catalog) (any, resource.Listing, error) {
		items, err := fetch(ctx, cat)
		if err != nil {
			return nil, resource.Listing{}, err
		}
		return items, shape(items), nil
	}
}

// getOf adapts a typed get call
func getOf[T any](fetch func(context.Context, *catalog.Catalog, string) (T, error)) func(context.Context, *catalog.Catalog, string) (any, error) {
	return func(ctx context.Context, cat *catalog.Catalog, id string) (any, error) {
		return fetch(ctx, cat, id)
	}
}

var resourceGroups = []resourceGroup{
	{
		name: "products",
		list: listOf(func(ctx context.Context, cat *catalog.Catalog) ([]catalog.Product, error) {
			return cat.Products.List(ctx, catalog.ProductFilter{CategoryID: filterCategory, ActiveOnly: activeOnly})
		}, resource.Products),
		get: getOf(func(ctx context.Context, cat *catalog.Catalog, id string) (catalog.Product, error) {
			return cat.Products.Get(ctx, id)
		}),
		remove: func(ctx context.Context, cat *catalog.Catalog, id string) error { return cat.Products.Delete(ctx, id) },
		flags: func(cmd *cobra.Command) {
			cmd.Flags().StringVar(&filterCategory, "category", "", "Only products in this category id")
			cmd.Flags().BoolVar(&activeOnly, "active-only", false, "Only active products")
		},
	},
	{
		name: "stock",
		list: listOf(func(ctx context.Context, cat *catalog.Catalog) ([]catalog.Stock, error) {
			return cat.Stock.List(ctx, filterProduct)
		}, resource.Stock),
		get: getOf(func(ctx context.Context, cat *catalog.Catalog, id string) (catalog.Stock, error) {
			return cat.Stock.Get(ctx, id)
		}),
		remove: func(ctx context.Context, cat *catalog.Catalog, id string) error { return cat.Stock.Delete(ctx, id) },
		flags: func(cmd *cobra.Command) {
			cmd.Flags().StringVar(&filterProduct, "product", "", "Only stock for this product id")
		},
	},
	{
		name: "orders",
		list: listOf(func(ctx context.Context, cat *catalog.Catalog) ([]catalog.Order, error) {
			return cat.Orders.List(ctx, filterStatus)
		}, resource.Orders),
		get: getOf(func(ctx context.Context, cat *catalog.Catalog, id string) (catalog.Order, error) {
			return cat.Orders.Get(ctx, id)
		}),
		remove: func(ctx context.Context, cat *catalog.Catalog, id string) error { return cat.Orders.Delete(ctx, id) },
		flags: func(cmd *cobra.Command) {
			cmd.Flags().StringVar(&filterStatus, "status", "", "Only orders with this status")
		},
	},
	{
		name: "categories",
		list: listOf(func(ctx context.Context, cat *catalog.Catalog) ([]catalog.Category, error) {
			return cat.Categories.List(ctx, activeOnly)
		}, resource.Categories),
		get: getOf(func(ctx context.Context, cat *catalog.Catalog, id string) (catalog.Category, error) {
			return cat.Categories.Get(ctx, id)
		}),
		remove: func(ctx context.Context, cat *catalog.Catalog, id string) error { return cat.Categories.Delete(ctx, id) },
		flags: func(cmd *cobra.Command) {
			cmd.Flags().BoolVar(&activeOnly, "active-only", false, "Only active categories")
		},
	},
	{
		name: "brands",
		list: listOf(func(ctx context.Context, cat *catalog.Catalog) ([]catalog.Brand, error) {
			return cat.Brands.List(ctx, activeOnly)
		}, resource.Brands),
		get: getOf(func(ctx context.Context, cat *catalog.Catalog, id string) (catalog.Brand, error) {
			return cat.Brands.Get(ctx, id)
		}),
		remove: func(ctx context.Context, cat *catalog.Catalog, id string) error { return cat.Brands.Delete(ctx, id) },
		flags: func(cmd *cobra.Command) {
			cmd.Flags().BoolVar(&activeOnly, "active-only", false, "Only active brands")
		},
	},
	{
		name: "sizes",
		list: listOf(func(ctx context.Context, cat *catalog.Catalog) ([]catalog.Size, error) {
			return cat.Sizes.List(ctx, filterSizeType)
		}, resource.Sizes),
		get: getOf(func(ctx context.Context, cat *catalog.Catalog, id string) (catalog.Size, error) {
			return cat.Sizes.Get(ctx, id)
		}),
		remove: func(ctx context.Context, cat *catalog.Catalog, id string) error { return cat.Sizes.Delete(ctx, id) },
		flags: func(cmd *cobra.Command) {
			cmd.Flags().StringVar(&filterSizeType, "type", "", "Only sizes of this size type id")
		},
	},
	{
		name: "banners",
		list: listOf(func(ctx context.Context, cat *catalog.Catalog) ([]catalog.Banner, error) {
			return cat.Banners.List(ctx)
		}, resource.Banners),
		get: getOf(func(ctx context.Context, cat *catalog.Catalog, id string) (catalog.Banner, error) {
			return cat.Banners.Get(ctx, id)
		}),
		remove: func(ctx context.Context, cat *catalog.Catalog, id string) error { return cat.Banners.Delete(ctx, id) },
	},
}

// signalContext is the context every command runs under
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// exitWith runs fn under a signal context and exits with its code
func exitWith(fn func(ctx context.Context) int) {
	ctx, cancel := signalContext()
	code := fn(ctx)
	cancel()
	if code != 0 {
		os.Exit(code)
	}
}

func newGroupCommand(g resourceGroup) *cobra.Command {
	group := &cobra.Command{
		Use:   g.name,
		Short: "Manage " + g.name,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List " + g.name,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			exitWith(func(ctx context.Context) int { return runList(ctx, os.Stdout, g) })
		},
	}
	if g.flags != nil {
		g.flags(list)
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one document as JSON",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			exitWith(func(ctx context.Context) int { return runGet(ctx, os.Stdout, g, args[0]) })
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one document",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			exitWith(func(ctx context.Context) int { return runDelete(ctx, os.Stdout, g, args[0]) })
		},
	}

	group.AddCommand(list, get, del)
	return group
}

func init() {
	groups := make(map[string]*cobra.Command, len(resourceGroups))
	for _, g := range resourceGroups {
		cmd := newGroupCommand(g)
		groups[g.name] = cmd
		rootCmd.AddCommand(cmd)
	}

	groups["stock"].AddCommand(&cobra.Command{
		Use:   "set <productId> <sizeId> <qty>",
		Short: "Set the quantity for a product size",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			exitWith(func(ctx context.Context) int { return runStockSet(ctx, os.Stdout, args[0], args[1], args[2]) })
		},
	})

	groups["orders"].AddCommand(&cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Move an order to pending, confirmed, shipped, or cancelled",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			exitWith(func(ctx context.Context) int { return runOrderStatus(ctx, os.Stdout, args[0], args[1]) })
		},
	})

	groups["sizes"].AddCommand(&cobra.Command{
		Use:   "types",
		Short: "List size types",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			exitWith(func(ctx context.Context) int { return runSizeTypes(ctx, os.Stdout) })
		},
	})

	groups["categories"].AddCommand(&cobra.Command{
		Use:   "size-types <id>",
		Short: "List the size types a category uses",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			exitWith(func(ctx context.Context) int { return runCategorySizeTypes(ctx, os.Stdout, args[0]) })
		},
	})

	addEditCommands(groups)
}

// runList prints a collection as a table or JSON
func runList(ctx context.Context, w io.Writer, g resourceGroup) int {
	rt, code := protectedRuntime(w)
	if rt == nil {
		return code
	}

	docs, listing, err := g.list(ctx, rt.catalog)
	if err != nil {
		return rt.fail(w, err)
	}

	if IsJSONOutput() {
		return rt.printJSON(w, docs)
	}
	fmt.Fprintln(w, formatListing(listing))
	return 0
}

// runGet prints one document
func runGet(ctx context.Context, w io.Writer, g resourceGroup, id string) int {
	rt, code := protectedRuntime(w)
	if rt == nil {
		return code
	}

	doc, err := g.get(ctx, rt.catalog, id)
	if err != nil {
		return rt.fail(w, err)
	}
	return rt.printJSON(w, doc)
}

// runDelete removes one document
func runDelete(ctx context.Context, w io.Writer, g resourceGroup, id string) int {
	rt, code := protectedRuntime(w)
	if rt == nil {
		return code
	}

	if err := g.remove(ctx, rt.catalog, id); err != nil {
		return rt.fail(w, err)
	}
	fmt.Fprintf(w, "Deleted %s %s\n", g.name, id)
	return 0
}

// runStockSet is the quick stock update
func runStockSet(ctx context.Context, w io.Writer, productID, sizeID, qtyArg string) int {
	qty, err := strconv.Atoi(qtyArg)
	if err != nil {
		fmt.Fprintf(w, "Error: quantity must be a whole number, got %q\n", qtyArg)
		return 2
	}

	rt, code := protectedRuntime(w)
	if rt == nil {
		return code
	}

	if _, err := rt.catalog.Stock.SetQuantity(ctx, productID, sizeID, qty); err != nil {
		return rt.fail(w, err)
	}
	fmt.Fprintf(w, "Stock for product %s size %s set to %d\n", productID, sizeID, qty)
	return 0
}

// runOrderStatus moves an order through the workflow
func runOrderStatus(ctx context.Context, w io.Writer, id, status string) int {
	rt, code := protectedRuntime(w)
	if rt == nil {
		return code
	}

	order, err := rt.catalog.Orders.SetStatus(ctx, id, status)
	if err != nil {
		return rt.fail(w, err)
	}
	if IsJSONOutput() {
		return rt.printJSON(w, order)
	}
	fmt.Fprintf(w, "Order %s is now %s\n", catalog.Order{ID: id}.ShortID(), status)
	return 0
}

func runSizeTypes(ctx context.Context, w io.Writer) int {
	rt, code := protectedRuntime(w)
	if rt == nil {
		return code
	}
	types, err := rt.catalog.Sizes.Types(ctx)
	if err != nil {
		return rt.fail(w, err)
	}
	return rt.printSizeTypes(w, types)
}

func runCategorySizeTypes(ctx context.Context, w io.Writer, id string) int {
	rt, code := protectedRuntime(w)
	if rt == nil {
		return code
	}
	types, err := rt.catalog.Categories.SizeTypes(ctx, id)
	if err != nil {
		return rt.fail(w, err)
	}
	return rt.printSizeTypes(w, types)
}

func (rt *runtime) printSizeTypes(w io.Writer, types []catalog.SizeType) int {
	if IsJSONOutput() {
		return rt.printJSON(w, types)
	}
	rows := make([][]string, 0, len(types))
	for _, t := range types {
		rows = append(rows, []string{t.ID, t.Name})
	}
	fmt.Fprintln(w, renderTable([]string{"ID", "Name"}, rows))
	return 0
}

// formatListing renders a listing with its ids as the first column
func formatListing(l resource.Listing) string {
	if l.Len() == 0 {
		return "No " + l.Path[1:] + " found."
	}

	headers := []string{"ID"}
	for _, c := range l.Columns {
		headers = append(headers, c.Title)
	}
	rows := make([][]string, 0, l.Len())
	for i, r := range l.Rows {
		rows = append(rows, append([]string{l.IDs[i]}, r...))
	}
	return renderTable(headers, rows)
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Muted)).
		Headers(headers...).
		Rows(rows...).
		String()
}

// formatJSON formats any document as indented JSON
func formatJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding output: %w", err)
	}
	return string(data), nil
}

// printJSON writes v as indented JSON, or reports why it could not
func (rt *runtime) printJSON(w io.Writer, v any) int {
	out, err := formatJSON(v)
	if err != nil {
		return rt.fail(w, err)
	}
	fmt.Fprintln(w, out)
	return 0
}
