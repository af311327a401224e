package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zetherabarter/Rec-Backend2/internal"
	"github.com/zetherabarter/Rec-Backend2/internal/dto"
)

type ApplicantRegistry interface {
	SaveApplicant(ctx context.Context, applicant dto.ApplicantReq) (string, error)
	SaveApplicants(ctx context.Context, applicants []dto.ApplicantReq) ([]string, error)
	GetApplicants(ctx context.Context, filters dto.PageFilter) ([]dto.Applicant, error)
	UpdateAttendance(ctx context.Context, applicantId string, isPresent bool) error
	AssignSlots(ctx context.Context, assignment dto.SlotAssignment) (int, error)
}

type ApplicantController struct {
	Registry ApplicantRegistry
}

func (ac *ApplicantController) CreateApplicant(c *gin.Context) {
	var applicantReq dto.ApplicantReq

	if err := c.ShouldBindJSON(&applicantReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := ac.Registry.SaveApplicant(c.Request.Context(), applicantReq)

	if err != nil && errors.As(err, &internal.ApplicantAlreadyExists{}) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	} else if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (ac *ApplicantController) CreateApplicants(c *gin.Context) {
	var batchReq dto.ApplicantBatchReq

	if err := c.ShouldBindJSON(&batchReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ids, err := ac.Registry.SaveApplicants(c.Request.Context(), batchReq.Applicants)

	if err != nil && errors.As(err, &internal.ApplicantAlreadyExists{}) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	} else if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, dto.ApplicantBatchResp{Ids: ids})
}

func (ac *ApplicantController) GetApplicants(c *gin.Context) {
	var filters dto.PageFilter

	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	applicants, err := ac.Registry.GetApplicants(c.Request.Context(), filters)

	if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, applicants)
}

func (ac *ApplicantController) UpdateAttendance(c *gin.Context) {
	var params dto.ApplicantUriParams

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var update dto.AttendanceUpdate

	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := ac.Registry.UpdateAttendance(c.Request.Context(), params.ApplicantId, *update.IsPresent)

	if err != nil && errors.As(err, &internal.EntityNotFound{}) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	} else if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

func (ac *ApplicantController) AssignSlots(c *gin.Context) {
	var assignment dto.SlotAssignment

	if err := c.ShouldBindJSON(&assignment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := ac.Registry.AssignSlots(c.Request.Context(), assignment)

	if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.SlotAssignmentResp{UpdatedCount: updated})
}
