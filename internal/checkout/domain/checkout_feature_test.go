package domain

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/cucumber/godog"

	cartDomain "github.com/ridloal/storefront-bff/internal/cart/domain"
	catalogDomain "github.com/ridloal/storefront-bff/internal/catalog/domain"
	gradeDomain "github.com/ridloal/storefront-bff/internal/grade/domain"
)

type checkoutTestContext struct {
	catalog []catalogDomain.Product
	rules   []gradeDomain.ShippingRule
	grade   gradeDomain.Grade
	cart    *cartDomain.Store
	summary Summary
	request PurchaseRequest
}

func (c *checkoutTestContext) reset() {
	c.catalog = nil
	c.rules = nil
	c.grade = gradeDomain.GradeExplorer
	c.cart = cartDomain.NewStore()
	c.summary = Summary{}
	c.request = PurchaseRequest{}
}

func (c *checkoutTestContext) theCatalog(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // header
		}
		id, err := strconv.ParseInt(row.Cells[0].Value, 10, 64)
		if err != nil {
			return err
		}
		price, err := strconv.ParseFloat(row.Cells[2].Value, 64)
		if err != nil {
			return err
		}
		c.catalog = append(c.catalog, catalogDomain.Product{ID: id, Name: row.Cells[1].Value, Price: price})
	}
	return nil
}

func (c *checkoutTestContext) theGradeShippingRules(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		grade, err := gradeDomain.ParseGrade(row.Cells[0].Value)
		if err != nil {
			return err
		}
		fee, err := strconv.ParseFloat(row.Cells[1].Value, 64)
		if err != nil {
			return err
		}
		threshold, err := strconv.ParseFloat(row.Cells[2].Value, 64)
		if err != nil {
			return err
		}
		c.rules = append(c.rules, gradeDomain.ShippingRule{Grade: grade, ShippingFee: fee, FreeShippingThreshold: threshold})
	}
	return nil
}

func (c *checkoutTestContext) theUserGradeIs(grade string) error {
	g, err := gradeDomain.ParseGrade(grade)
	if err != nil {
		return err
	}
	c.grade = g
	return nil
}

func (c *checkoutTestContext) theCartContainsOfProduct(qty int, productID int) error {
	for i := 0; i < qty; i++ {
		c.cart.AddItem(int64(productID))
	}
	return nil
}

func (c *checkoutTestContext) iCheckOutWithDelivery(method string) error {
	m, err := ParseDeliveryMethod(method)
	if err != nil {
		return err
	}
	items := c.cart.Items()
	c.summary = NewCalculator(DefaultFreeShippingThreshold).Calculate(Input{
		Items:         items,
		Catalog:       catalogDomain.Index(c.catalog),
		Method:        m,
		Grade:         c.grade,
		ShippingRules: c.rules,
	})
	c.request = NewPurchaseRequest(c.summary, items)
	return nil
}

func expectAmount(name string, got, want float64) error {
	if got != want {
		return fmt.Errorf("expected %s %v, got %v", name, want, got)
	}
	return nil
}

func (c *checkoutTestContext) theItemsTotalIs(want float64) error {
	return expectAmount("items total", c.summary.ItemsTotal, want)
}

func (c *checkoutTestContext) theDeliveryFeeIs(want float64) error {
	return expectAmount("delivery fee", c.summary.DeliveryFee, want)
}

func (c *checkoutTestContext) theTotalPriceIs(want float64) error {
	if err := expectAmount("total price", c.summary.TotalPrice, want); err != nil {
		return err
	}
	return expectAmount("purchase total", c.request.TotalPrice, want)
}

func (c *checkoutTestContext) thePurchaseRequestHasItems(n int) error {
	if len(c.request.Items) != n {
		return fmt.Errorf("expected %d purchase items, got %d", n, len(c.request.Items))
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &checkoutTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given
	ctx.Step(`^the catalog:$`, tc.theCatalog)
	ctx.Step(`^the grade shipping rules:$`, tc.theGradeShippingRules)
	ctx.Step(`^the user grade is "([^"]*)"$`, tc.theUserGradeIs)
	ctx.Step(`^the cart contains (\d+) of product (\d+)$`, tc.theCartContainsOfProduct)

	// When
	ctx.Step(`^I check out with "([^"]*)" delivery$`, tc.iCheckOutWithDelivery)

	// Then
	ctx.Step(`^the items total is (\d+(?:\.\d+)?)$`, tc.theItemsTotalIs)
	ctx.Step(`^the delivery fee is (\d+(?:\.\d+)?)$`, tc.theDeliveryFeeIs)
	ctx.Step(`^the total price is (\d+(?:\.\d+)?)$`, tc.theTotalPriceIs)
	ctx.Step(`^the purchase request has (\d+) items$`, tc.thePurchaseRequestHasItems)
}

func TestCheckoutFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../../features/checkout.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
