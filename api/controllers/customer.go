package controllers

import (
	"fmt"
	"net/http"

	"github.com/PayRam/go-chinook/api/router"
	"github.com/PayRam/go-chinook/request"
	"github.com/PayRam/go-chinook/response"
	"github.com/PayRam/go-chinook/service"
	"github.com/labstack/echo/v4"
)

const (
	customerPath       = "/customers"
	customerSearchPath = "/customerssearch"
)

type CustomerController struct {
	Customers service.CustomerService
}

// Register implements router.Controller.Register
func (controller *CustomerController) Register(router *router.Router) {
	router.GET(customerSearchPath, controller.searchAction)

	router = router.Group(customerPath)

	router.GET("", controller.listAction)
	router.POST("", controller.createAction)
	router.GET("/:id", controller.getAction)
	router.PUT("/:id", controller.updateAction)
	router.DELETE("/:id", controller.deleteAction)
	router.GET("/:id/employees", controller.employeesAction)
	router.GET("/:id/invoices", controller.invoicesAction)
}

func (controller *CustomerController) listAction(ctx echo.Context) error {
	pagination, err := paginationParams(ctx)
	if err != nil {
		return err
	}

	customers, err := controller.Customers.GetCustomers(request.GetCustomersRequest{PaginationConditions: pagination})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, customers)
}

func (controller *CustomerController) getAction(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	customer, err := controller.Customers.GetCustomer(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, customer)
}

func (controller *CustomerController) createAction(ctx echo.Context) error {
	var req request.CustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	customer, err := controller.Customers.CreateCustomer(req)
	if err != nil {
		return fmt.Errorf("error adding new customer: %w", err)
	}
	return ctx.JSON(http.StatusCreated, response.CustomerCreated{CustomerID: customer.ID})
}

func (controller *CustomerController) updateAction(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	var req request.CustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	rows, err := controller.Customers.UpdateCustomer(id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, response.Message{Message: "Customer updated successfully", RowsAffected: &rows})
}

func (controller *CustomerController) deleteAction(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	rows, err := controller.Customers.DeleteCustomer(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, response.Message{Message: fmt.Sprintf("Rows deleted: %d", rows)})
}

// searchAction runs the advanced filter, e.g. ?search=Country:Brazil;OR;Country:USA
func (controller *CustomerController) searchAction(ctx echo.Context) error {
	customers, err := controller.Customers.SearchCustomers(request.SearchCustomersRequest{Search: ctx.QueryParam("search")})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, customers)
}

func (controller *CustomerController) employeesAction(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	employees, err := controller.Customers.GetCustomerSupportEmployees(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, employees)
}

func (controller *CustomerController) invoicesAction(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	lines, err := controller.Customers.GetCustomerInvoiceLines(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, lines)
}
