package usecase

import (
	"context"
	"errors"
	"testing"

	"vhc_service/internal/domain/entities"
	mock_interfaces "vhc_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newRepairItemUseCase(ctrl *gomock.Controller) (*RepairItemUseCase, *mock_interfaces.MockIHealthCheckRepository, *mock_interfaces.MockIRepairItemRepository) {
	hcs := mock_interfaces.NewMockIHealthCheckRepository(ctrl)
	repo := mock_interfaces.NewMockIRepairItemRepository(ctrl)
	uc := NewRepairItemUseCase(hcs, repo)
	uc.now = fixedClock
	return uc, hcs, repo
}

func echoSave(repo *mock_interfaces.MockIRepairItemRepository) {
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, item entities.RepairItem) (entities.RepairItem, error) { return item, nil })
}

func TestRepairItemUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newRepairItemUseCase(ctrl)

		_, err := uc.Create(context.Background(), "hc-1", CreateRepairItemInput{Name: " "})
		if !errors.Is(err, ErrInvalidRepairItemData) {
			t.Fatalf("expected ErrInvalidRepairItemData, got %v", err)
		}
	})

	t.Run("unknown rag status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, hcs, _ := newRepairItemUseCase(ctrl)
		hcs.EXPECT().GetByID(gomock.Any(), "hc-1").Return(healthCheck("hc-1", entities.HealthCheckStatusInProgress), nil)

		_, err := uc.Create(context.Background(), "hc-1", CreateRepairItemInput{
			Name:         "Brakes",
			CheckResults: []entities.CheckResult{{Name: "Pads", RAGStatus: "purple"}},
		})
		if !errors.Is(err, ErrInvalidRepairItemData) {
			t.Fatalf("expected ErrInvalidRepairItemData, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, hcs, repo := newRepairItemUseCase(ctrl)
		hcs.EXPECT().GetByID(gomock.Any(), "hc-1").Return(healthCheck("hc-1", entities.HealthCheckStatusInProgress), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, item entities.RepairItem) (entities.RepairItem, error) { return item, nil })

		got, err := uc.Create(context.Background(), "hc-1", CreateRepairItemInput{
			Name:         " Brakes ",
			CheckResults: []entities.CheckResult{{Name: "Pads", RAGStatus: entities.RAGAmber}},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Name != "Brakes" || got.HealthCheckID != "hc-1" || got.LabourStatus != entities.WorkStatusPending {
			t.Fatalf("unexpected item: %+v", got)
		}
		if len(got.CheckResults) != 1 || got.CheckResults[0].ID == "" {
			t.Fatalf("expected check result with generated id, got %+v", got.CheckResults)
		}
	})
}

func TestRepairItemUseCase_AddLineItem(t *testing.T) {
	t.Run("labour moves pending status to in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		item := redItem("a", "100")
		item.Labour = nil
		repo.EXPECT().GetByID(gomock.Any(), "a").Return(item, nil)
		echoSave(repo)

		got, err := uc.AddLineItem(context.Background(), "a", entities.LineItem{
			Kind: entities.LineItemKindLabour, Quantity: dec("1.5"), UnitSellPrice: dec("80"),
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got.Labour) != 1 || got.Labour[0].ID == "" {
			t.Fatalf("expected one labour line with id, got %+v", got.Labour)
		}
		if got.LabourStatus != entities.WorkStatusInProgress || got.PartsStatus != entities.WorkStatusPending {
			t.Fatalf("unexpected work statuses %s/%s", got.LabourStatus, got.PartsStatus)
		}
	})

	t.Run("invalid line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "a").Return(redItem("a", "100"), nil)

		_, err := uc.AddLineItem(context.Background(), "a", entities.LineItem{
			Kind: entities.LineItemKindPart, Quantity: dec("0"), UnitSellPrice: dec("10"),
		})
		var verr *entities.ValidationError
		if !errors.As(err, &verr) || verr.Field != "quantity" || verr.ItemID != "a" || verr.LineItemID == "" {
			t.Fatalf("expected quantity validation error, got %v", err)
		}
	})

	t.Run("item with options", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		item := redItem("a", "100")
		item.Labour = nil
		item.Options = []entities.RepairOption{{ID: "o1", Name: "Budget"}}
		repo.EXPECT().GetByID(gomock.Any(), "a").Return(item, nil)

		_, err := uc.AddLineItem(context.Background(), "a", entities.LineItem{Kind: entities.LineItemKindPart, Quantity: dec("1")})
		if !errors.Is(err, ErrMixedPricing) {
			t.Fatalf("expected ErrMixedPricing, got %v", err)
		}
	})

	t.Run("direct allocation to a foreign child", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		group := entities.RepairItem{ID: "g", IsGroup: true}
		repo.EXPECT().GetByID(gomock.Any(), "g").Return(group, nil)
		repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.RepairItem{ID: "x", ParentRepairItemID: "other"}, nil)

		_, err := uc.AddLineItem(context.Background(), "g", entities.LineItem{
			Kind: entities.LineItemKindPart, Quantity: dec("1"), UnitSellPrice: dec("10"),
			AllocationType: entities.AllocationDirect, ChildRepairItemID: "x",
		})
		if !errors.Is(err, entities.ErrInvalidAllocation) {
			t.Fatalf("expected ErrInvalidAllocation, got %v", err)
		}
	})

	t.Run("deleted item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		item := redItem("a", "100")
		item.OutcomeStatus = entities.OutcomeDeleted
		repo.EXPECT().GetByID(gomock.Any(), "a").Return(item, nil)

		_, err := uc.AddLineItem(context.Background(), "a", entities.LineItem{Kind: entities.LineItemKindPart, Quantity: dec("1")})
		if !errors.Is(err, ErrRepairItemDeleted) {
			t.Fatalf("expected ErrRepairItemDeleted, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "a").Return(entities.RepairItem{}, nil)

		_, err := uc.AddLineItem(context.Background(), "a", entities.LineItem{})
		if !errors.Is(err, ErrRepairItemNotFound) {
			t.Fatalf("expected ErrRepairItemNotFound, got %v", err)
		}
	})
}

func TestRepairItemUseCase_UpdateAndRemoveLineItem(t *testing.T) {
	t.Run("update keeps id and kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "a").Return(redItem("a", "100"), nil)
		echoSave(repo)

		got, err := uc.UpdateLineItem(context.Background(), "a", "l-a", entities.LineItem{
			Kind: entities.LineItemKindPart, Quantity: dec("2"), UnitSellPrice: dec("90"),
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got.Labour) != 1 || got.Labour[0].ID != "l-a" || !got.Labour[0].Quantity.Equal(dec("2")) {
			t.Fatalf("unexpected labour lines %+v", got.Labour)
		}
	})

	t.Run("update unknown line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "a").Return(redItem("a", "100"), nil)

		_, err := uc.UpdateLineItem(context.Background(), "a", "nope", entities.LineItem{})
		if !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
	})

	t.Run("remove", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "a").Return(redItem("a", "100"), nil)
		echoSave(repo)

		got, err := uc.RemoveLineItem(context.Background(), "a", "l-a")
		if err != nil || len(got.Labour) != 0 {
			t.Fatalf("unexpected result: %+v err=%v", got.Labour, err)
		}
	})
}

func TestRepairItemUseCase_Options(t *testing.T) {
	t.Run("add to item with direct lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "a").Return(redItem("a", "100"), nil)

		_, err := uc.AddOption(context.Background(), "a", entities.RepairOption{Name: "Premium"})
		if !errors.Is(err, ErrMixedPricing) {
			t.Fatalf("expected ErrMixedPricing, got %v", err)
		}
	})

	t.Run("recommended option is unique", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		item := entities.RepairItem{ID: "a", Options: []entities.RepairOption{{ID: "o1", Name: "Budget", IsRecommended: true}}}
		repo.EXPECT().GetByID(gomock.Any(), "a").Return(item, nil)
		echoSave(repo)

		got, err := uc.AddOption(context.Background(), "a", entities.RepairOption{
			Name:          "Premium",
			IsRecommended: true,
			Parts:         []entities.LineItem{{Quantity: dec("1"), UnitSellPrice: dec("200")}},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got.Options) != 2 || got.Options[0].IsRecommended || !got.Options[1].IsRecommended {
			t.Fatalf("unexpected options %+v", got.Options)
		}
		if got.Options[1].Parts[0].Kind != entities.LineItemKindPart || got.Options[1].Parts[0].ID == "" {
			t.Fatalf("expected normalised part line, got %+v", got.Options[1].Parts[0])
		}
	})

	t.Run("select unknown option", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "a").Return(entities.RepairItem{ID: "a"}, nil)

		_, err := uc.SelectOption(context.Background(), "a", "o9")
		if !errors.Is(err, ErrRepairOptionNotFound) {
			t.Fatalf("expected ErrRepairOptionNotFound, got %v", err)
		}
	})

	t.Run("select", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "a").Return(entities.RepairItem{ID: "a", Options: []entities.RepairOption{{ID: "o1"}, {ID: "o2"}}}, nil)
		echoSave(repo)

		got, err := uc.SelectOption(context.Background(), "a", "o2")
		if err != nil || got.SelectedOptionID != "o2" {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})
}

func TestRepairItemUseCase_PriceOverride(t *testing.T) {
	t.Run("requires reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "a").Return(redItem("a", "100"), nil)

		_, err := uc.SetPriceOverride(context.Background(), "a", dec("90"), "  ")
		if !errors.Is(err, entities.ErrOverrideReasonRequired) {
			t.Fatalf("expected ErrOverrideReasonRequired, got %v", err)
		}
	})

	t.Run("negative", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "a").Return(redItem("a", "100"), nil)

		_, err := uc.SetPriceOverride(context.Background(), "a", dec("-1"), "goodwill")
		if !errors.Is(err, entities.ErrNegativeOverride) {
			t.Fatalf("expected ErrNegativeOverride, got %v", err)
		}
	})

	t.Run("set and clear", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "a").Return(redItem("a", "100"), nil)
		echoSave(repo)

		got, err := uc.SetPriceOverride(context.Background(), "a", dec("0"), "goodwill")
		if err != nil || !got.PriceOverride.Valid || got.PriceOverrideReason != "goodwill" {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}

		repo.EXPECT().GetByID(gomock.Any(), "a").Return(got, nil)
		echoSave(repo)
		cleared, err := uc.ClearPriceOverride(context.Background(), "a")
		if err != nil || cleared.PriceOverride.Valid || cleared.PriceOverrideReason != "" {
			t.Fatalf("unexpected result: %+v err=%v", cleared, err)
		}
	})
}

func TestRepairItemUseCase_UpdateWorkStatus(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "a").Return(redItem("a", "100"), nil)
		echoSave(repo)

		complete := entities.WorkStatusComplete
		yes := true
		got, err := uc.UpdateWorkStatus(context.Background(), "a", WorkStatusInput{LabourStatus: &complete, NoPartsRequired: &yes})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.LabourStatus != entities.WorkStatusComplete || got.PartsStatus != entities.WorkStatusPending || !got.NoPartsRequired {
			t.Fatalf("unexpected item %+v", got)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "a").Return(redItem("a", "100"), nil)

		bogus := entities.WorkStatus("done")
		_, err := uc.UpdateWorkStatus(context.Background(), "a", WorkStatusInput{PartsStatus: &bogus})
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestRepairItemUseCase_Delete(t *testing.T) {
	t.Run("plain item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "a").Return(redItem("a", "100"), nil)
		echoSave(repo)

		got, err := uc.Delete(context.Background(), "a")
		if err != nil || !got.IsDeleted() {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})

	t.Run("group deletes live children", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		group := entities.RepairItem{ID: "g", HealthCheckID: "hc-1", IsGroup: true}
		childA := redItem("a", "100")
		childA.ParentRepairItemID = "g"
		childB := redItem("b", "50")
		childB.ParentRepairItemID = "g"
		childB.OutcomeStatus = entities.OutcomeDeleted
		repo.EXPECT().GetByID(gomock.Any(), "g").Return(group, nil)
		repo.EXPECT().ListByHealthCheckID(gomock.Any(), "hc-1").Return([]entities.RepairItem{group, childA, childB, redItem("c", "10")}, nil)

		var batch []entities.RepairItem
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, items []entities.RepairItem) error {
				batch = items
				return nil
			})

		if _, err := uc.Delete(context.Background(), "g"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(batch) != 2 || batch[0].ID != "g" || batch[1].ID != "a" || !batch[1].IsDeleted() {
			t.Fatalf("unexpected batch %+v", batch)
		}
	})
}

func TestRepairItemUseCase_CreateGroup(t *testing.T) {
	t.Run("needs two items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newRepairItemUseCase(ctrl)

		_, err := uc.CreateGroup(context.Background(), "hc-1", CreateGroupInput{Name: "Brakes", ItemIDs: []string{"a", " a "}})
		if !errors.Is(err, entities.ErrGroupNeedsChildren) {
			t.Fatalf("expected ErrGroupNeedsChildren, got %v", err)
		}
	})

	t.Run("no nesting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, hcs, repo := newRepairItemUseCase(ctrl)
		hcs.EXPECT().GetByID(gomock.Any(), "hc-1").Return(healthCheck("hc-1", entities.HealthCheckStatusInProgress), nil)
		repo.EXPECT().ListByHealthCheckID(gomock.Any(), "hc-1").Return([]entities.RepairItem{
			redItem("a", "100"),
			{ID: "g", IsGroup: true},
		}, nil)

		_, err := uc.CreateGroup(context.Background(), "hc-1", CreateGroupInput{Name: "Brakes", ItemIDs: []string{"a", "g"}})
		if !errors.Is(err, entities.ErrNestedGroup) {
			t.Fatalf("expected ErrNestedGroup, got %v", err)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, hcs, repo := newRepairItemUseCase(ctrl)
		hcs.EXPECT().GetByID(gomock.Any(), "hc-1").Return(healthCheck("hc-1", entities.HealthCheckStatusInProgress), nil)
		repo.EXPECT().ListByHealthCheckID(gomock.Any(), "hc-1").Return([]entities.RepairItem{redItem("a", "100")}, nil)

		_, err := uc.CreateGroup(context.Background(), "hc-1", CreateGroupInput{Name: "Brakes", ItemIDs: []string{"a", "zz"}})
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, hcs, repo := newRepairItemUseCase(ctrl)
		a := redItem("a", "100")
		a.SortOrder = 3
		hcs.EXPECT().GetByID(gomock.Any(), "hc-1").Return(healthCheck("hc-1", entities.HealthCheckStatusInProgress), nil)
		repo.EXPECT().ListByHealthCheckID(gomock.Any(), "hc-1").Return([]entities.RepairItem{a, redItem("b", "50")}, nil)
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Len(3)).Return(nil)

		group, err := uc.CreateGroup(context.Background(), "hc-1", CreateGroupInput{Name: "Brakes", ItemIDs: []string{"a", "b"}})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !group.IsGroup || group.SortOrder != 3 || len(group.Children) != 2 {
			t.Fatalf("unexpected group %+v", group)
		}
		for _, c := range group.Children {
			if c.ParentRepairItemID != group.ID {
				t.Fatalf("child %s not linked to group", c.ID)
			}
		}
	})
}

func TestRepairItemUseCase_Ungroup(t *testing.T) {
	t.Run("not a group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "a").Return(redItem("a", "100"), nil)

		_, err := uc.Ungroup(context.Background(), "a")
		if !errors.Is(err, ErrNotAGroup) {
			t.Fatalf("expected ErrNotAGroup, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, repo := newRepairItemUseCase(ctrl)
		group := entities.RepairItem{ID: "g", HealthCheckID: "hc-1", IsGroup: true, SortOrder: 2}
		child := redItem("a", "100")
		child.ParentRepairItemID = "g"
		repo.EXPECT().GetByID(gomock.Any(), "g").Return(group, nil)
		repo.EXPECT().ListByHealthCheckID(gomock.Any(), "hc-1").Return([]entities.RepairItem{group, child}, nil)

		var batch []entities.RepairItem
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, items []entities.RepairItem) error {
				batch = items
				return nil
			})

		children, err := uc.Ungroup(context.Background(), "g")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(children) != 1 || !children[0].IsTopLevel() || children[0].SortOrder != 2 {
			t.Fatalf("unexpected children %+v", children)
		}
		if len(batch) != 2 || batch[1].ID != "g" || !batch[1].IsDeleted() {
			t.Fatalf("unexpected batch %+v", batch)
		}
	})
}
