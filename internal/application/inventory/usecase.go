package inventory

import (
	"context"

	"github.com/jhoicas/joyeria-api/internal/application/dto"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	"github.com/jhoicas/joyeria-api/internal/domain/inventory"
)

// RecordMovementFromRequest adapta el request HTTP al caso de uso RecordMovement.
func (uc *RegisterMovementUseCase) RecordMovementFromRequest(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	mov, err := uc.RecordMovement(ctx, MovementInput{
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		Reason:     in.Reason,
		ShowcaseID: in.ShowcaseID,
		UserID:     userID,
	})
	if err != nil {
		return nil, err
	}
	return ToMovementResponse(mov), nil
}

// ToMovementResponse agrega al registro el tipo derivado del signo y la cantidad a mostrar.
func ToMovementResponse(m *entity.InventoryMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:              m.ID,
		ProductID:       m.ProductID,
		Quantity:        m.Quantity,
		DisplayQuantity: inventory.DisplayQuantity(m.Quantity),
		Type:            string(inventory.Classify(m.Quantity)),
		Reason:          m.Reason,
		ShowcaseID:      m.ShowcaseID,
		CreatedBy:       m.CreatedBy,
		CreatedAt:       m.CreatedAt,
	}
}
