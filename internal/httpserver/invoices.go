package httpserver

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoice-web-app/internal/domain"
	"invoice-web-app/internal/render"
	invoicesvc "invoice-web-app/internal/service/invoice"
	"invoice-web-app/internal/validation"
)

// InvoiceService is the subset of the invoice service used by handlers.
type InvoiceService interface {
	List(ctx context.Context, f invoicesvc.ListFilter) ([]domain.Invoice, error)
	Get(ctx context.Context, id string) (*domain.Invoice, error)
	Create(ctx context.Context, p validation.InvoicePayload) (*domain.Invoice, error)
	Update(ctx context.Context, id string, p validation.InvoicePayload) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, id string, p validation.StatusPayload) (*domain.Invoice, error)
	Delete(ctx context.Context, id string) error
	Preview(p validation.InvoicePayload) (*domain.Invoice, error)
}

type invoiceHandlers struct {
	svc    InvoiceService
	logger *log.Logger
}

// list godoc
// @Summary      List invoices
// @Description  Newest first. An unknown status value is ignored.
// @Tags         invoices
// @Produce      json
// @Param        status  query     string  false  "draft, pending or paid"
// @Param        search  query     string  false  "Full-text search over client name, email, description and status"
// @Success      200     {object}  listResponse{data=[]domain.Invoice}
// @Failure      500     {object}  errorResponse
// @Router       /invoices [get]
func (h *invoiceHandlers) list(c *gin.Context) {
	invoices, err := h.svc.List(c.Request.Context(), invoicesvc.ListFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Success: true, Count: len(invoices), Data: invoices})
}

// get godoc
// @Summary      Get invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice store id (UUID)"
// @Success      200  {object}  dataResponse{data=domain.Invoice}
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /invoices/{id} [get]
func (h *invoiceHandlers) get(c *gin.Context) {
	inv, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, inv)
}

// create godoc
// @Summary      Create invoice
// @Description  Assigns a fresh invoice code and computes totals and the due date. Status defaults to pending.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice  body      validation.InvoicePayload  true  "Invoice contents"
// @Success      201      {object}  dataResponse{data=domain.Invoice}
// @Failure      400      {object}  errorResponse
// @Failure      500      {object}  errorResponse
// @Router       /invoices [post]
func (h *invoiceHandlers) create(c *gin.Context) {
	var p validation.InvoicePayload
	if err := bindJSON(c, &p); err != nil {
		writeError(c, h.logger, err)
		return
	}
	inv, err := h.svc.Create(c.Request.Context(), p)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusCreated, inv)
}

// update godoc
// @Summary      Update invoice
// @Description  Replaces all user fields and recomputes derived ones. The invoice code never changes.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Invoice store id (UUID)"
// @Param        invoice  body      validation.InvoicePayload  true  "Invoice contents"
// @Success      200      {object}  dataResponse{data=domain.Invoice}
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /invoices/{id} [put]
func (h *invoiceHandlers) update(c *gin.Context) {
	id := c.Param("id")
	if err := validation.ValidateID(id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	var p validation.InvoicePayload
	if err := bindJSON(c, &p); err != nil {
		writeError(c, h.logger, err)
		return
	}
	inv, err := h.svc.Update(c.Request.Context(), id, p)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, inv)
}

// updateStatus godoc
// @Summary      Update invoice status
// @Description  Touches only status and updatedAt.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id      path      string                    true  "Invoice store id (UUID)"
// @Param        status  body      validation.StatusPayload  true  "New status"
// @Success      200     {object}  dataResponse{data=domain.Invoice}
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /invoices/{id}/status [patch]
func (h *invoiceHandlers) updateStatus(c *gin.Context) {
	id := c.Param("id")
	if err := validation.ValidateID(id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	var p validation.StatusPayload
	if err := bindJSON(c, &p); err != nil {
		writeError(c, h.logger, err)
		return
	}
	inv, err := h.svc.UpdateStatus(c.Request.Context(), id, p)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, inv)
}

// delete godoc
// @Summary      Delete invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice store id (UUID)"
// @Success      200  {object}  dataResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /invoices/{id} [delete]
func (h *invoiceHandlers) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{})
}

// preview godoc
// @Summary      Preview invoice
// @Description  Validates and normalizes a payload without storing it.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice  body      validation.InvoicePayload  true  "Invoice contents"
// @Success      200      {object}  dataResponse{data=domain.Invoice}
// @Failure      400      {object}  errorResponse
// @Router       /invoices/preview [post]
func (h *invoiceHandlers) preview(c *gin.Context) {
	var p validation.InvoicePayload
	if err := bindJSON(c, &p); err != nil {
		writeError(c, h.logger, err)
		return
	}
	inv, err := h.svc.Preview(p)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, inv)
}

// pdf godoc
// @Summary      Download invoice PDF
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path  string  true  "Invoice store id (UUID)"
// @Success      200  {file}    file
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /invoices/{id}/pdf [get]
func (h *invoiceHandlers) pdf(c *gin.Context) {
	inv, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	var buf bytes.Buffer
	if err := render.InvoicePDF(&buf, *inv); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", render.FileName(*inv)))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
