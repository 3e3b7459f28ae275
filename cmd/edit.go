// ABOUTME: Create and update commands built from each resource's form fields
// ABOUTME: Also size types, category size types, product images, and stock lookup

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/osamaqaseem39/strikersgear-dashboard/internal/catalog"
	"github.com/spf13/cobra"
)

// fieldFlagUsage describes a form field as a flag
func fieldFlagUsage(f catalog.Field, creating bool) string {
	usage := f.Label
	switch f.Kind {
	case catalog.KindRef:
		usage += " (" + f.RefTo + " id)"
	case catalog.KindNumber:
		usage += " (number)"
	case catalog.KindInteger:
		usage += " (whole number)"
	case catalog.KindFlag:
		usage += " (true or false)"
	}
	if creating && f.Required {
		usage += ", required"
	}
	return usage
}

// editableFields returns the fields a command accepts
func editableFields(e catalog.Editor, creating bool) []catalog.Field {
	var fields []catalog.Field
	for _, f := range e.Fields() {
		if !creating && f.CreateOnly {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}

// changedValues collects the field flags the operator actually set
func changedValues(cmd *cobra.Command, fields []catalog.Field) map[string]string {
	values := map[string]string{}
	for _, f := range fields {
		if !cmd.Flags().Changed(f.Key) {
			continue
		}
		v, _ := cmd.Flags().GetString(f.Key)
		values[f.Key] = v
	}
	return values
}

func newCreateCommand(e catalog.Editor) *cobra.Command {
	fields := editableFields(e, true)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create one document from field flags",
		Args:  cobra.NoArgs,
	}
	for _, f := range fields {
		cmd.Flags().String(f.Key, "", fieldFlagUsage(f, true))
	}
	cmd.Run = func(cmd *cobra.Command, args []string) {
		values := changedValues(cmd, fields)
		exitWith(func(ctx context.Context) int { return runCreate(ctx, os.Stdout, e.Resource(), values) })
	}
	return cmd
}

func newUpdateCommand(e catalog.Editor) *cobra.Command {
	fields := editableFields(e, false)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the fields given as flags; the rest keep their values",
		Args:  cobra.ExactArgs(1),
	}
	for _, f := range fields {
		cmd.Flags().String(f.Key, "", fieldFlagUsage(f, false))
	}
	cmd.Run = func(cmd *cobra.Command, args []string) {
		values := changedValues(cmd, fields)
		exitWith(func(ctx context.Context) int { return runUpdate(ctx, os.Stdout, e.Resource(), args[0], values) })
	}
	return cmd
}

// addEditCommands attaches create and update to every editable group.
// The catalog here has no requester; only its field schemas are read.
func addEditCommands(groups map[string]*cobra.Command) {
	for _, e := range catalog.New(nil).Editors() {
		group, ok := groups[e.Resource()]
		if !ok {
			continue
		}
		group.AddCommand(newCreateCommand(e), newUpdateCommand(e))
	}

	var typeName string
	createType := &cobra.Command{
		Use:   "create-type",
		Short: "Create a size type such as UK, EU, or Alpha",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			exitWith(func(ctx context.Context) int { return runCreateSizeType(ctx, os.Stdout, typeName) })
		},
	}
	createType.Flags().StringVar(&typeName, "name", "", "Size type name, required")
	groups["sizes"].AddCommand(createType)

	groups["categories"].AddCommand(&cobra.Command{
		Use:   "add-size-type <id> <sizeTypeId>",
		Short: "Let a category use a size type",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			exitWith(func(ctx context.Context) int { return runAddCategorySizeType(ctx, os.Stdout, args[0], args[1]) })
		},
	})

	groups["products"].AddCommand(
		&cobra.Command{
			Use:   "add-image <id> <imageUrl>",
			Short: "Append an image URL to a product",
			Args:  cobra.ExactArgs(2),
			Run: func(cmd *cobra.Command, args []string) {
				exitWith(func(ctx context.Context) int { return runProductImage(ctx, os.Stdout, args[0], args[1], true) })
			},
		},
		&cobra.Command{
			Use:   "remove-image <id> <imageUrl>",
			Short: "Remove an image URL from a product",
			Args:  cobra.ExactArgs(2),
			Run: func(cmd *cobra.Command, args []string) {
				exitWith(func(ctx context.Context) int { return runProductImage(ctx, os.Stdout, args[0], args[1], false) })
			},
		},
	)

	groups["stock"].AddCommand(&cobra.Command{
		Use:   "show <productId> <sizeId>",
		Short: "Show the stock row for one product size",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			exitWith(func(ctx context.Context) int { return runStockShow(ctx, os.Stdout, args[0], args[1]) })
		},
	})
}

// runCreate creates one document of resource from raw field values
func runCreate(ctx context.Context, w io.Writer, resource string, values map[string]string) int {
	rt, code := protectedRuntime(w)
	if rt == nil {
		return code
	}
	e, ok := rt.catalog.Editor(resource)
	if !ok {
		fmt.Fprintf(w, "Error: %s cannot be created here\n", resource)
		return 2
	}

	saved, err := e.Create(ctx, values)
	if err != nil {
		return rt.fail(w, err)
	}
	return rt.printSaved(w, "Created", resource, saved)
}

// runUpdate changes the given fields of one document
func runUpdate(ctx context.Context, w io.Writer, resource, id string, values map[string]string) int {
	rt, code := protectedRuntime(w)
	if rt == nil {
		return code
	}
	e, ok := rt.catalog.Editor(resource)
	if !ok {
		fmt.Fprintf(w, "Error: %s cannot be updated here\n", resource)
		return 2
	}

	saved, err := e.Update(ctx, id, values)
	if err != nil {
		return rt.fail(w, err)
	}
	return rt.printSaved(w, "Updated", resource, saved)
}

func (rt *runtime) printSaved(w io.Writer, verb, resource string, saved catalog.Saved) int {
	if IsJSONOutput() {
		return rt.printJSON(w, saved.Doc)
	}
	fmt.Fprintf(w, "%s %s %s\n", verb, resource, saved.ID)
	return 0
}

func runCreateSizeType(ctx context.Context, w io.Writer, name string) int {
	rt, code := protectedRuntime(w)
	if rt == nil {
		return code
	}
	st, err := rt.catalog.Sizes.CreateType(ctx, catalog.SizeType{Name: strings.TrimSpace(name)})
	if err != nil {
		return rt.fail(w, err)
	}
	if IsJSONOutput() {
		return rt.printJSON(w, st)
	}
	fmt.Fprintf(w, "Created size type %s (%s)\n", st.Name, st.ID)
	return 0
}

func runAddCategorySizeType(ctx context.Context, w io.Writer, categoryID, sizeTypeID string) int {
	rt, code := protectedRuntime(w)
	if rt == nil {
		return code
	}
	cat, err := rt.catalog.Categories.AddSizeType(ctx, categoryID, sizeTypeID)
	if err != nil {
		return rt.fail(w, err)
	}
	if IsJSONOutput() {
		return rt.printJSON(w, cat)
	}
	fmt.Fprintf(w, "Category %s now uses size type %s\n", categoryID, sizeTypeID)
	return 0
}

func runProductImage(ctx context.Context, w io.Writer, productID, imageURL string, add bool) int {
	rt, code := protectedRuntime(w)
	if rt == nil {
		return code
	}

	var (
		p   catalog.Product
		err error
	)
	if add {
		p, err = rt.catalog.Products.AddImage(ctx, productID, imageURL)
	} else {
		p, err = rt.catalog.Products.RemoveImage(ctx, productID, imageURL)
	}
	if err != nil {
		return rt.fail(w, err)
	}
	if IsJSONOutput() {
		return rt.printJSON(w, p)
	}
	fmt.Fprintf(w, "Product %s has %d image(s)\n", productID, len(p.Images))
	return 0
}

func runStockShow(ctx context.Context, w io.Writer, productID, sizeID string) int {
	rt, code := protectedRuntime(w)
	if rt == nil {
		return code
	}
	row, err := rt.catalog.Stock.ForProductSize(ctx, productID, sizeID)
	if err != nil {
		return rt.fail(w, err)
	}
	if IsJSONOutput() {
		return rt.printJSON(w, row)
	}
	fmt.Fprintf(w, "Product %s size %s: %d in stock\n", row.Product.Display(), row.Size.Display(), row.Quantity)
	return 0
}
