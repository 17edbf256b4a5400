package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/priyodas12/orders-service/internal/httpx"
	ord "github.com/priyodas12/orders-service/internal/order"
)

// rootHandler mirrors the classic smoke endpoint: a fresh uuid and the time.
func rootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"uuid": uuid.NewString(),
			"time": time.Now().UTC().Format(time.RFC3339Nano),
		})
	}
}

// getOrderHandler GET /orders/:id
func getOrderHandler(repo ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		o, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, ord.ErrNotFound) {
				httpx.Fail(c, http.StatusNotFound, fmt.Sprintf("order %s not found", id))
				return
			}
			httpx.Fail(c, http.StatusInternalServerError, "internal server error")
			return
		}
		httpx.OK(c, http.StatusOK, ord.ToWire(o))
	}
}

// getOrderByCustomerHandler GET /orders/customer?customer_id=...
// Without customer_id it falls back to the latest order overall; an empty
// store then answers 200 with a null order, not an error.
func getOrderByCustomerHandler(repo ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := strings.TrimSpace(c.Query("customer_id"))
		if customerID == "" {
			o, err := repo.GetLatest(c.Request.Context())
			if err != nil {
				httpx.Fail(c, http.StatusInternalServerError, "internal server error")
				return
			}
			if o == nil {
				httpx.OK(c, http.StatusOK, nil)
				return
			}
			httpx.OK(c, http.StatusOK, ord.ToWire(o))
			return
		}

		o, err := repo.GetByCustomerID(c.Request.Context(), customerID)
		if err != nil {
			if errors.Is(err, ord.ErrNotFound) {
				httpx.Fail(c, http.StatusNotFound, fmt.Sprintf("no order for customer %s", customerID))
				return
			}
			httpx.Fail(c, http.StatusInternalServerError, "internal server error")
			return
		}
		httpx.OK(c, http.StatusOK, ord.ToWire(o))
	}
}

// listOrdersHandler GET /orders
func listOrdersHandler(repo ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := repo.GetAll(c.Request.Context())
		if err != nil {
			httpx.Fail(c, http.StatusInternalServerError, "internal server error")
			return
		}
		httpx.OK(c, http.StatusOK, ord.ToWireAll(orders))
	}
}

// createOrderHandler POST /orders. Accepts a JSON body or query-style fields.
func createOrderHandler(repo ord.Repository, statuses []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ord.CreateOrderRequest
		var err error
		if strings.HasPrefix(c.ContentType(), "application/json") {
			err = c.ShouldBindJSON(&req)
		} else {
			err = c.ShouldBindQuery(&req)
		}
		if err != nil {
			httpx.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		o, err := req.ToOrder(time.Now().UTC(), statuses)
		if err != nil {
			httpx.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		stored, err := repo.Create(c.Request.Context(), o)
		if err != nil {
			if errors.Is(err, ord.ErrConflict) {
				httpx.Fail(c, http.StatusConflict, fmt.Sprintf("order %s already exists", o.OrderID))
				return
			}
			httpx.Fail(c, http.StatusInternalServerError, "internal server error")
			return
		}
		httpx.OK(c, http.StatusCreated, ord.ToWire(stored))
	}
}

// updateOrderHandler PUT /orders
func updateOrderHandler(repo ord.Repository, statuses []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ord.UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		o, err := req.ToOrder(statuses)
		if err != nil {
			httpx.Fail(c, http.StatusBadRequest, err.Error())
			return
		}

		stored, err := repo.Update(c.Request.Context(), o)
		if err != nil {
			if errors.Is(err, ord.ErrNotFound) {
				httpx.Fail(c, http.StatusNotFound, fmt.Sprintf("order %s not found", req.OrderID))
				return
			}
			httpx.Fail(c, http.StatusInternalServerError, "internal server error")
			return
		}
		httpx.OK(c, http.StatusOK, ord.ToWire(stored))
	}
}

// deleteOrderHandler DELETE /orders/:id
func deleteOrderHandler(repo ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		o, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, ord.ErrNotFound) {
				httpx.Fail(c, http.StatusNotFound, fmt.Sprintf("order %s not found", id))
				return
			}
			httpx.Fail(c, http.StatusInternalServerError, "internal server error")
			return
		}
		httpx.OK(c, http.StatusOK, ord.ToWire(o))
	}
}
