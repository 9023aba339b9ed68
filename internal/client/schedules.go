// ABOUTME: Study schedule and attendance endpoints
// ABOUTME: Covers personal and per-group schedules plus attendance records

package client

import (
	"context"
	"fmt"
)

// Schedule represents a planned study session.
type Schedule struct {
	ScheduleID int64  `json:"scheduleId"`
	GroupID    int64  `json:"group_id"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	Location   string `json:"location"`
}

// ScheduleInput is the payload for creating or updating a schedule.
type ScheduleInput struct {
	GroupID  int64  `json:"group_id,omitempty"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

// AttendanceRecord represents one attendance entry for a schedule.
type AttendanceRecord struct {
	ScheduleID int64  `json:"scheduleId"`
	UserID     int64  `json:"userId"`
	Status     string `json:"status"`
	Date       string `json:"date"`
}

// MySchedules fetches the current user's upcoming schedules.
func (c *Client) MySchedules(ctx context.Context) ([]Schedule, error) {
	var schedules []Schedule
	if err := c.Get(ctx, "/study-schedules/me", nil, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// GroupSchedules fetches the schedules of a group.
func (c *Client) GroupSchedules(ctx context.Context, groupID int64) ([]Schedule, error) {
	var schedules []Schedule
	if err := c.Get(ctx, fmt.Sprintf("/study-groups/%d/schedules", groupID), nil, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// GetSchedule fetches a single schedule by ID.
func (c *Client) GetSchedule(ctx context.Context, scheduleID int64) (*Schedule, error) {
	var s Schedule
	if err := c.Get(ctx, fmt.Sprintf("/study-schedules/%d", scheduleID), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSchedule creates a schedule for a group.
func (c *Client) CreateSchedule(ctx context.Context, groupID int64, input ScheduleInput) error {
	return c.Post(ctx, fmt.Sprintf("/study-groups/%d/schedules", groupID), input, nil)
}

// UpdateSchedule replaces a schedule's details.
func (c *Client) UpdateSchedule(ctx context.Context, scheduleID int64, input ScheduleInput) error {
	return c.Put(ctx, fmt.Sprintf("/study-schedules/%d", scheduleID), input, nil)
}

// DeleteSchedule removes a schedule.
func (c *Client) DeleteSchedule(ctx context.Context, scheduleID int64) error {
	return c.Delete(ctx, fmt.Sprintf("/study-schedules/%d", scheduleID))
}

// RecordAttendance records an attendance entry.
func (c *Client) RecordAttendance(ctx context.Context, record AttendanceRecord) error {
	return c.Post(ctx, "/attendance", record, nil)
}

// MyAttendance fetches the current user's attendance history.
func (c *Client) MyAttendance(ctx context.Context) ([]AttendanceRecord, error) {
	var records []AttendanceRecord
	if err := c.Get(ctx, "/attendance/me", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}
