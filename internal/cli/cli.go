package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dkovacevic/minishop/internal/shop/app"
	"github.com/dkovacevic/minishop/internal/shop/domain"
)

// CLI drives an interactive shopping session over a reader/writer pair.
type CLI struct {
	service *app.Service
	in      *bufio.Scanner
	out     io.Writer
}

func New(service *app.Service, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops over the menu until the user exits or input runs out.
func (c *CLI) Run(ctx context.Context) error {
	fmt.Fprintf(c.out, "Welcome to the shop, %s!\n", c.service.UserName())

	for {
		c.printMenu()

		choice, ok := c.readLine()
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			c.showProducts(ctx)
		case "2":
			c.searchProducts(ctx)
		case "3":
			c.addToCart(ctx)
		case "4":
			c.showCart()
		case "5":
			c.updateCart(ctx)
		case "6":
			c.checkout(ctx)
		case "7":
			c.showOrders(ctx)
		case "0":
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(c.out, "Unknown option, try again.")
		}
	}
}

func (c *CLI) printMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "1. Browse products")
	fmt.Fprintln(c.out, "2. Search products")
	fmt.Fprintln(c.out, "3. Add product to cart")
	fmt.Fprintln(c.out, "4. View cart")
	fmt.Fprintln(c.out, "5. Update cart item")
	fmt.Fprintln(c.out, "6. Checkout")
	fmt.Fprintln(c.out, "7. Order history")
	fmt.Fprintln(c.out, "0. Exit")
	fmt.Fprint(c.out, "> ")
}

func (c *CLI) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *CLI) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	return c.readLine()
}

func (c *CLI) promptInt(label string) (int, bool) {
	raw, ok := c.prompt(label)
	if !ok {
		return 0, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		fmt.Fprintln(c.out, "Not a number.")
		return 0, false
	}
	return value, true
}

func (c *CLI) showProducts(ctx context.Context) {
	products, err := c.service.ListProducts(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	c.printProducts(products)
}

func (c *CLI) searchProducts(ctx context.Context) {
	keyword, ok := c.prompt("Keyword: ")
	if !ok {
		return
	}

	products, err := c.service.SearchProducts(ctx, keyword)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(c.out, "No products found.")
		return
	}
	c.printProducts(products)
}

func (c *CLI) printProducts(products []domain.Product) {
	for _, p := range products {
		fmt.Fprintf(c.out, "%d. %s (%s) %s, %d in stock\n",
			p.ID, p.Name, p.Category, dollars(p.PriceCents), p.Stock)
	}
}

func (c *CLI) addToCart(ctx context.Context) {
	id, ok := c.promptInt("Product id: ")
	if !ok {
		return
	}
	quantity, ok := c.promptInt("Quantity: ")
	if !ok {
		return
	}

	if err := c.service.AddToCart(ctx, int64(id), quantity); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "Added to cart.")
}

func (c *CLI) showCart() {
	if c.service.CartIsEmpty() {
		fmt.Fprintln(c.out, "Your cart is empty.")
		return
	}

	for _, line := range c.service.CartLines() {
		fmt.Fprintf(c.out, "%d. %s x%d = %s\n",
			line.ProductID, line.Name, line.Quantity, dollars(line.LineTotalCents()))
	}
	fmt.Fprintf(c.out, "Subtotal: %s\n", dollars(c.service.CartSubtotal()))
}

func (c *CLI) updateCart(ctx context.Context) {
	id, ok := c.promptInt("Product id: ")
	if !ok {
		return
	}
	quantity, ok := c.promptInt("New quantity (0 removes): ")
	if !ok {
		return
	}

	if quantity == 0 {
		c.service.RemoveFromCart(int64(id))
		fmt.Fprintln(c.out, "Removed from cart.")
		return
	}

	if err := c.service.UpdateCartQuantity(ctx, int64(id), quantity); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "Cart updated.")
}

func (c *CLI) checkout(ctx context.Context) {
	policy, ok := c.pickDiscount()
	if !ok {
		return
	}

	order, err := c.service.Checkout(ctx, policy)
	if err != nil {
		fmt.Fprintf(c.out, "Checkout failed: %v\n", err)
		return
	}

	fmt.Fprintf(c.out, "Order %s placed!\n", order.ID)
	fmt.Fprintf(c.out, "Subtotal: %s\n", dollars(order.SubtotalCents))
	fmt.Fprintf(c.out, "Discount: -%s\n", dollars(order.DiscountCents))
	fmt.Fprintf(c.out, "Total: %s\n", dollars(order.TotalCents))
}

func (c *CLI) pickDiscount() (domain.DiscountPolicy, bool) {
	fmt.Fprintln(c.out, "1. No discount")
	fmt.Fprintln(c.out, "2. Percentage off")
	fmt.Fprintln(c.out, "3. Fixed amount off")
	fmt.Fprintln(c.out, "4. Percentage off above a threshold")

	choice, ok := c.prompt("Discount: ")
	if !ok {
		return nil, false
	}

	switch strings.TrimSpace(choice) {
	case "1", "":
		return domain.NoDiscount{}, true
	case "2":
		percent, ok := c.promptInt("Percent: ")
		if !ok {
			return nil, false
		}
		return domain.PercentageDiscount{Percent: float64(percent)}, true
	case "3":
		amount, ok := c.promptInt("Amount in cents: ")
		if !ok {
			return nil, false
		}
		return domain.FixedAmountDiscount{AmountCents: int64(amount)}, true
	case "4":
		threshold, ok := c.promptInt("Threshold in cents: ")
		if !ok {
			return nil, false
		}
		percent, ok := c.promptInt("Percent: ")
		if !ok {
			return nil, false
		}
		return domain.ThresholdPercentageDiscount{
			ThresholdCents: int64(threshold),
			Percent:        float64(percent),
		}, true
	default:
		fmt.Fprintln(c.out, "Unknown discount, using none.")
		return domain.NoDiscount{}, true
	}
}

func (c *CLI) showOrders(ctx context.Context) {
	orders, err := c.service.ListOrders(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	if len(orders) == 0 {
		fmt.Fprintln(c.out, "No orders yet.")
		return
	}

	for _, order := range orders {
		fmt.Fprintf(c.out, "Order %s (%s): %s\n",
			order.ID, order.CreatedAt.Format("2006-01-02 15:04:05"), dollars(order.TotalCents))
		for _, line := range order.Lines {
			fmt.Fprintf(c.out, "  %s x%d = %s\n",
				line.Name, line.Quantity, dollars(line.LineTotalCents()))
		}
	}
}

func dollars(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
