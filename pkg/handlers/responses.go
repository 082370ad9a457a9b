package handlers

import (
	"github.com/jakechorley/shift-roster/pkg/core/allocator"
	"github.com/jakechorley/shift-roster/pkg/core/services"
)

type dateStaffingResponse struct {
	Date           string `json:"date"`
	Required       int    `json:"required"`
	EventExtra     int    `json:"eventExtra"`
	CalendarExtra  int    `json:"calendarExtra"`
	Reason         string `json:"reason,omitempty"`
	SpecialDayName string `json:"specialDayName,omitempty"`
}

type roshChodeshResponse struct {
	Date  string `json:"date"`
	Month string `json:"month"`
}

type staffingResponse struct {
	WeekStart         string                 `json:"weekStart"`
	WeekEnd           string                 `json:"weekEnd"`
	TotalRequired     int                    `json:"totalRequired"`
	Dates             []dateStaffingResponse `json:"dates"`
	RoshChodeshAlerts []roshChodeshResponse  `json:"roshChodeshAlerts"`
}

type assignmentResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	ShiftType  string `json:"shiftType"`
	Category   string `json:"category"`
	Status     string `json:"status"`
}

type dateShortfallResponse struct {
	Date     string `json:"date"`
	Required int    `json:"required"`
	Assigned int    `json:"assigned"`
}

type minimumShortfallResponse struct {
	EmployeeID string `json:"employeeId"`
	Minimum    int    `json:"minimum"`
	Assigned   int    `json:"assigned"`
}

type draftResponse struct {
	WeekStart        string                     `json:"weekStart"`
	WeekEnd          string                     `json:"weekEnd"`
	Saved            bool                       `json:"saved"`
	Staffing         []dateStaffingResponse     `json:"staffing"`
	Assignments      []assignmentResponse       `json:"assignments"`
	WeeklyCounts     map[string]int             `json:"weeklyCounts"`
	TopUpCount       int                        `json:"topUpCount"`
	Understaffed     []dateShortfallResponse    `json:"understaffed"`
	BelowMinimum     []minimumShortfallResponse `json:"belowMinimum"`
	ValidationErrors []string                   `json:"validationErrors"`
}

func newDateStaffing(s allocator.DateStaffing) dateStaffingResponse {
	return dateStaffingResponse{
		Date:           s.Date,
		Required:       s.Required,
		EventExtra:     s.EventExtra,
		CalendarExtra:  s.CalendarExtra,
		Reason:         string(s.Reason),
		SpecialDayName: s.SpecialDayName,
	}
}

func newStaffingResponse(report *services.StaffingReport) staffingResponse {
	resp := staffingResponse{
		WeekStart:         report.WeekStart,
		WeekEnd:           report.WeekEnd,
		TotalRequired:     report.TotalRequired,
		Dates:             make([]dateStaffingResponse, 0, len(report.Dates)),
		RoshChodeshAlerts: make([]roshChodeshResponse, 0, len(report.RoshChodeshAlerts)),
	}
	for _, d := range report.Dates {
		resp.Dates = append(resp.Dates, newDateStaffing(d))
	}
	for _, a := range report.RoshChodeshAlerts {
		resp.RoshChodeshAlerts = append(resp.RoshChodeshAlerts, roshChodeshResponse{Date: a.Date, Month: a.Month})
	}
	return resp
}

func newDraftResponse(result *services.DraftWeekResult) draftResponse {
	resp := draftResponse{
		WeekStart:        result.WeekStart,
		WeekEnd:          result.WeekEnd,
		Saved:            result.Saved,
		Staffing:         make([]dateStaffingResponse, 0, len(result.Staffing)),
		Assignments:      make([]assignmentResponse, 0, len(result.Assignments)),
		WeeklyCounts:     result.WeeklyCounts,
		TopUpCount:       result.TopUpCount,
		Understaffed:     make([]dateShortfallResponse, 0, len(result.Understaffed)),
		BelowMinimum:     make([]minimumShortfallResponse, 0, len(result.BelowMinimum)),
		ValidationErrors: make([]string, 0, len(result.ValidationErrors)),
	}
	for _, s := range result.Staffing {
		resp.Staffing = append(resp.Staffing, newDateStaffing(s))
	}
	for _, a := range result.Assignments {
		resp.Assignments = append(resp.Assignments, assignmentResponse{
			ID:         a.ID,
			EmployeeID: a.EmployeeID,
			Date:       a.Date,
			StartTime:  a.StartTime,
			EndTime:    a.EndTime,
			ShiftType:  string(a.ShiftType),
			Category:   a.Category,
			Status:     string(a.Status),
		})
	}
	for _, s := range result.Understaffed {
		resp.Understaffed = append(resp.Understaffed, dateShortfallResponse{Date: s.Date, Required: s.Required, Assigned: s.Assigned})
	}
	for _, s := range result.BelowMinimum {
		resp.BelowMinimum = append(resp.BelowMinimum, minimumShortfallResponse{EmployeeID: s.EmployeeID, Minimum: s.Minimum, Assigned: s.Assigned})
	}
	for _, v := range result.ValidationErrors {
		resp.ValidationErrors = append(resp.ValidationErrors, v.Description)
	}
	return resp
}
