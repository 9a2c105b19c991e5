package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Receipt pairs an order with cashier and message metadata. The order is
// read at render time, not copied.
type Receipt struct {
	ID          int64  `json:"id"`
	CashierName string `json:"cashier_name"`
	Order       *Order `json:"order"`
	Message     string `json:"message"`
}

func NewReceipt(id int64, cashier string, order *Order, message string) *Receipt {
	return &Receipt{ID: id, CashierName: cashier, Order: order, Message: message}
}

const (
	receiptNoPrefix = "Receipt No.: "
	cashierPrefix   = "Cashier: "
	itemsHeader     = "Items:"
	discountPrefix  = "Discount: "
	totalPrefix     = "Order Total: $"
)

// Render formats the receipt:
//
//	Receipt No.: <id>
//	Cashier: <name>
//
//	Items:
//	<name> $<price>
//
//	Discount: <amount> (<type>)
//	Order Total: $<total>
//	<message>
func (r *Receipt) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%d\n", receiptNoPrefix, r.ID)
	fmt.Fprintf(&b, "%s%s\n\n", cashierPrefix, r.CashierName)
	b.WriteString(itemsHeader + "\n")

	v := OrderView{Discount: decimal.Zero, DiscountType: DiscountNone, Total: decimal.Zero}
	if r.Order != nil {
		v = r.Order.View()
	}
	for _, it := range v.Items {
		fmt.Fprintf(&b, "%s $%s\n", it.Name, it.Price.StringFixed(2))
	}
	fmt.Fprintf(&b, "\n%s%s (%s)\n", discountPrefix, v.Discount.String(), v.DiscountType)
	fmt.Fprintf(&b, "%s%s\n", totalPrefix, v.Total.StringFixed(2))
	b.WriteString(r.Message)
	return b.String()
}

// ReceiptLine is one item line of a parsed receipt.
type ReceiptLine struct {
	Name  string
	Price decimal.Decimal
}

// ParsedReceipt is what ParseReceipt recovers from rendered text.
type ParsedReceipt struct {
	ID           int64
	CashierName  string
	Items        []ReceiptLine
	Discount     decimal.Decimal
	DiscountType DiscountType
	Total        decimal.Decimal
	Message      string
}

// ParseReceipt reads text produced by Render. Every error wraps ErrInvalidValue.
func ParseReceipt(text string) (*ParsedReceipt, error) {
	lines := strings.Split(text, "\n")
	bad := func(format string, args ...any) error {
		return fmt.Errorf("receipt: "+format+": %w", append(args, ErrInvalidValue)...)
	}
	if len(lines) < 8 {
		return nil, bad("too few lines (%d)", len(lines))
	}

	out := &ParsedReceipt{}
	idStr, ok := strings.CutPrefix(lines[0], receiptNoPrefix)
	if !ok {
		return nil, bad("missing receipt number")
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nil, bad("receipt number %q", idStr)
	}
	out.ID = id

	if out.CashierName, ok = strings.CutPrefix(lines[1], cashierPrefix); !ok {
		return nil, bad("missing cashier")
	}
	if lines[2] != "" || lines[3] != itemsHeader {
		return nil, bad("missing items header")
	}

	i := 4
	for ; i < len(lines) && lines[i] != ""; i++ {
		sep := strings.LastIndex(lines[i], " $")
		if sep < 0 {
			return nil, bad("item line %q", lines[i])
		}
		price, err := decimal.NewFromString(lines[i][sep+2:])
		if err != nil {
			return nil, bad("item price %q", lines[i])
		}
		out.Items = append(out.Items, ReceiptLine{Name: lines[i][:sep], Price: price})
	}
	// blank separator, discount, total, message
	if i+4 > len(lines) {
		return nil, bad("truncated after items")
	}
	i++

	disc, ok := strings.CutPrefix(lines[i], discountPrefix)
	if !ok {
		return nil, bad("missing discount")
	}
	open := strings.LastIndex(disc, " (")
	if open < 0 || !strings.HasSuffix(disc, ")") {
		return nil, bad("discount %q", disc)
	}
	if out.Discount, err = decimal.NewFromString(disc[:open]); err != nil {
		return nil, bad("discount amount %q", disc[:open])
	}
	if out.DiscountType, err = ParseDiscountType(disc[open+2 : len(disc)-1]); err != nil {
		return nil, bad("discount type %q", disc[open+2:len(disc)-1])
	}
	i++

	totalStr, ok := strings.CutPrefix(lines[i], totalPrefix)
	if !ok {
		return nil, bad("missing total")
	}
	if out.Total, err = decimal.NewFromString(totalStr); err != nil {
		return nil, bad("total %q", totalStr)
	}
	i++

	out.Message = strings.Join(lines[i:], "\n")
	return out, nil
}
