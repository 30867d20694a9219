package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/teacher-portal-api/internal/dto"
	"github.com/noah-isme/teacher-portal-api/internal/models"
	appErrors "github.com/noah-isme/teacher-portal-api/pkg/errors"
)

type slotFinder interface {
	GetDetail(ctx context.Context, id string) (*models.SlotDetail, error)
	BusyTeacherIDs(ctx context.Context, day, period string) ([]string, error)
	QualifiedTeacherIDs(ctx context.Context, subjectID string) ([]string, error)
}

type classTeacherReader interface {
	ListByClass(ctx context.Context, classID string) ([]models.Teacher, error)
}

// SubstituteService finds cover candidates for a timetable slot.
type SubstituteService struct {
	slots    slotFinder
	teachers classTeacherReader
	logger   *zap.Logger
}

// NewSubstituteService constructs SubstituteService.
func NewSubstituteService(slots slotFinder, teachers classTeacherReader, logger *zap.Logger) *SubstituteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubstituteService{slots: slots, teachers: teachers, logger: logger}
}

// Candidates partitions the teachers of the slot's class for one slot.
// Anyone with a lecture of their own in the same day and period never
// lands in a free list: qualified clashers are reported busy, the rest
// are dropped. The free teachers split into those who teach the slot's
// subject somewhere and those who never do.
func (s *SubstituteService) Candidates(ctx context.Context, teacherID, slotID string) (*dto.SubstituteResponse, error) {
	slot, err := s.slots.GetDetail(ctx, slotID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "slot not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load slot")
	}
	if slot.TeacherID != teacherID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "slot belongs to another teacher")
	}

	colleagues, err := s.teachers.ListByClass(ctx, slot.ClassID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list class teachers")
	}

	busyIDs, err := s.slots.BusyTeacherIDs(ctx, slot.Day, slot.Period)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list busy teachers")
	}
	qualifiedIDs, err := s.slots.QualifiedTeacherIDs(ctx, slot.SubjectID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list qualified teachers")
	}

	busy := make(map[string]struct{}, len(busyIDs))
	for _, id := range busyIDs {
		busy[id] = struct{}{}
	}
	qualified := make(map[string]struct{}, len(qualifiedIDs))
	for _, id := range qualifiedIDs {
		qualified[id] = struct{}{}
	}

	resp := &dto.SubstituteResponse{
		SlotID:  slot.ID,
		Day:     slot.Day,
		Period:  slot.Period,
		Subject: slot.SubjectName,
	}
	for _, colleague := range colleagues {
		if colleague.ID == slot.TeacherID {
			continue
		}
		resp.TotalChecked++
		candidate := dto.SubstituteCandidate{
			TeacherID:  colleague.ID,
			FullName:   colleague.FullName,
			Department: colleague.DepartmentID,
		}
		_, isQualified := qualified[colleague.ID]
		if _, isBusy := busy[colleague.ID]; isBusy {
			if isQualified {
				resp.Busy = append(resp.Busy, candidate)
			}
			continue
		}
		if isQualified {
			resp.Free = append(resp.Free, candidate)
		} else {
			resp.Unassigned = append(resp.Unassigned, candidate)
		}
	}
	resp.AvailableCount = len(resp.Free)
	resp.Warning = resp.AvailableCount == 0
	return resp, nil
}
