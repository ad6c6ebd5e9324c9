package villanumber

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "villa-service/internal/domain/villa"
	"villa-service/internal/testutil"
	apperrors "villa-service/pkg/errors"
)

func setupTestUsecase(t *testing.T) (*Usecase, *testutil.MockRepository[domain.VillaNumber], *testutil.MockRepository[domain.Villa]) {
	numbers := new(testutil.MockRepository[domain.VillaNumber])
	villas := new(testutil.MockRepository[domain.Villa])
	return New(numbers, villas, zaptest.NewLogger(t)), numbers, villas
}

var royal = &domain.Villa{ID: 1, Name: "Royal Villa", Rate: 200}

// ==================== LIST ====================

func TestListVillaNumbers(t *testing.T) {
	uc, numbers, _ := setupTestUsecase(t)
	ctx := context.Background()

	numbers.On("GetAll", ctx, domain.Page{}, testutil.Filters()).Return([]domain.VillaNumber{
		{VillaNo: 101, VillaID: 1, Villa: royal},
		{VillaNo: 201, VillaID: 2},
	}, nil)
	numbers.On("GetAll", ctx, domain.NewPage(1, 10), testutil.Filters(domain.ByOwner(1))).Return([]domain.VillaNumber{
		{VillaNo: 101, VillaID: 1, Villa: royal},
	}, nil)

	all, err := uc.ListVillaNumbers(ctx, ListVillaNumbersRequest{})
	require.NoError(t, err)
	require.Len(t, all.VillaNumbers, 2)
	require.NotNil(t, all.VillaNumbers[0].Villa)
	assert.Equal(t, "Royal Villa", all.VillaNumbers[0].Villa.Name)
	assert.Nil(t, all.VillaNumbers[1].Villa)

	owned, err := uc.ListVillaNumbers(ctx, ListVillaNumbersRequest{VillaID: 1, PageNumber: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, owned.VillaNumbers, 1)
	assert.Equal(t, domain.Page{Number: 1, Size: 10}, owned.Page)
}

func TestListVillaNumbers_Errors(t *testing.T) {
	uc, numbers, _ := setupTestUsecase(t)
	ctx := context.Background()

	_, err := uc.ListVillaNumbers(ctx, ListVillaNumbersRequest{VillaID: -1})
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusCode(err))

	numbers.On("GetAll", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	_, err = uc.ListVillaNumbers(ctx, ListVillaNumbersRequest{})
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusCode(err))
}

// ==================== GET ====================

func TestGetVillaNumber(t *testing.T) {
	uc, numbers, _ := setupTestUsecase(t)
	ctx := context.Background()

	numbers.On("Get", ctx, testutil.Filters(domain.ByVillaNo(101))).
		Return(&domain.VillaNumber{VillaNo: 101, VillaID: 1, SpecialDetails: "sea", Villa: royal}, nil)
	numbers.On("Get", ctx, testutil.Filters(domain.ByVillaNo(999))).Return(nil, nil)

	got, err := uc.GetVillaNumber(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, 101, got.VillaNo)
	assert.Equal(t, "sea", got.SpecialDetails)
	require.NotNil(t, got.Villa)
	assert.Equal(t, 1, got.Villa.ID)

	_, err = uc.GetVillaNumber(ctx, 999)
	assert.Equal(t, http.StatusNotFound, apperrors.StatusCode(err))
}

func TestGetVillaNumber_ZeroSkipsStore(t *testing.T) {
	uc, numbers, _ := setupTestUsecase(t)

	for _, no := range []int{0, -5} {
		_, err := uc.GetVillaNumber(context.Background(), no)
		assert.Equal(t, http.StatusBadRequest, apperrors.StatusCode(err))
	}
	numbers.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestGetVillaNumber_StoreError(t *testing.T) {
	uc, numbers, _ := setupTestUsecase(t)
	numbers.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := uc.GetVillaNumber(context.Background(), 101)
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusCode(err))
	assert.Contains(t, apperrors.Messages(err)[0], "timeout")
}

// ==================== CREATE ====================

func TestCreateVillaNumber_Success(t *testing.T) {
	uc, numbers, villas := setupTestUsecase(t)
	ctx := context.Background()
	in := &VillaNumberCreateDTO{VillaNo: 701, VillaID: 1, SpecialDetails: "x"}

	numbers.On("Get", ctx, testutil.Filters(domain.ByVillaNo(701))).Return(nil, nil)
	villas.On("Get", ctx, testutil.Filters(domain.ByID(1))).Return(royal, nil)
	numbers.On("Create", ctx, mock.MatchedBy(func(vn *domain.VillaNumber) bool {
		return vn.VillaNo == 701 && vn.VillaID == 1 && vn.SpecialDetails == "x"
	})).Return(nil)

	got, err := uc.CreateVillaNumber(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 701, got.VillaNo)
	assert.Equal(t, 1, got.VillaID)
	require.NotNil(t, got.Villa)
	assert.Equal(t, "Royal Villa", got.Villa.Name)
	numbers.AssertExpectations(t)
	villas.AssertExpectations(t)
}

func TestCreateVillaNumber_Duplicate(t *testing.T) {
	uc, numbers, villas := setupTestUsecase(t)
	ctx := context.Background()

	numbers.On("Get", ctx, testutil.Filters(domain.ByVillaNo(101))).Return(&domain.VillaNumber{VillaNo: 101, VillaID: 1}, nil)

	_, err := uc.CreateVillaNumber(ctx, &VillaNumberCreateDTO{VillaNo: 101, VillaID: 1})
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusCode(err))
	assert.Equal(t, []string{"Villa Number already Exists!"}, apperrors.Messages(err))
	numbers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	villas.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestCreateVillaNumber_InvalidVillaID(t *testing.T) {
	uc, numbers, villas := setupTestUsecase(t)
	ctx := context.Background()

	numbers.On("Get", ctx, testutil.Filters(domain.ByVillaNo(702))).Return(nil, nil)
	villas.On("Get", ctx, testutil.Filters(domain.ByID(99))).Return(nil, nil)

	_, err := uc.CreateVillaNumber(ctx, &VillaNumberCreateDTO{VillaNo: 702, VillaID: 99})
	var re *apperrors.ReferentialIntegrityError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, []string{"Villa ID is invalid"}, apperrors.Messages(err))
	numbers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateVillaNumber_ShapeErrors(t *testing.T) {
	uc, numbers, _ := setupTestUsecase(t)
	ctx := context.Background()

	_, err := uc.CreateVillaNumber(ctx, nil)
	assert.Equal(t, []string{"request body is required"}, apperrors.Messages(err))

	_, err = uc.CreateVillaNumber(ctx, &VillaNumberCreateDTO{VillaNo: -1})
	assert.Equal(t, []string{"VillaNo must be greater than 0", "VillaID is required"}, apperrors.Messages(err))

	numbers.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

// ==================== UPDATE ====================

func TestUpdateVillaNumber_Success(t *testing.T) {
	uc, numbers, villas := setupTestUsecase(t)
	ctx := context.Background()
	created := time.Date(2024, time.January, 30, 12, 0, 0, 0, time.UTC)

	villas.On("Get", ctx, testutil.Filters(domain.ByID(3))).Return(&domain.Villa{ID: 3}, nil)
	numbers.On("Get", ctx, testutil.Filters(domain.ByVillaNo(201))).
		Return(&domain.VillaNumber{VillaNo: 201, VillaID: 2, CreatedDate: created}, nil)
	numbers.On("Update", ctx, mock.MatchedBy(func(vn *domain.VillaNumber) bool {
		return vn.VillaNo == 201 && vn.VillaID == 3 && vn.SpecialDetails == "moved" && vn.CreatedDate.Equal(created)
	})).Return(nil)

	err := uc.UpdateVillaNumber(ctx, 201, &VillaNumberUpdateDTO{VillaNo: 201, VillaID: 3, SpecialDetails: "moved"})
	require.NoError(t, err)
	numbers.AssertExpectations(t)
}

func TestUpdateVillaNumber_MismatchSkipsStore(t *testing.T) {
	uc, numbers, villas := setupTestUsecase(t)

	err := uc.UpdateVillaNumber(context.Background(), 201, &VillaNumberUpdateDTO{VillaNo: 999, VillaID: 2})
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusCode(err))
	numbers.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	villas.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestUpdateVillaNumber_NilBody(t *testing.T) {
	uc, _, _ := setupTestUsecase(t)

	err := uc.UpdateVillaNumber(context.Background(), 201, nil)
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusCode(err))
}

func TestUpdateVillaNumber_InvalidVillaIDBeforeNotFound(t *testing.T) {
	uc, numbers, villas := setupTestUsecase(t)
	ctx := context.Background()

	villas.On("Get", ctx, testutil.Filters(domain.ByID(99))).Return(nil, nil)

	err := uc.UpdateVillaNumber(ctx, 888, &VillaNumberUpdateDTO{VillaNo: 888, VillaID: 99})
	assert.Equal(t, []string{"Villa ID is invalid"}, apperrors.Messages(err))
	numbers.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestUpdateVillaNumber_NotFound(t *testing.T) {
	uc, numbers, villas := setupTestUsecase(t)
	ctx := context.Background()

	villas.On("Get", ctx, testutil.Filters(domain.ByID(1))).Return(royal, nil)
	numbers.On("Get", ctx, testutil.Filters(domain.ByVillaNo(888))).Return(nil, nil)

	err := uc.UpdateVillaNumber(ctx, 888, &VillaNumberUpdateDTO{VillaNo: 888, VillaID: 1})
	assert.Equal(t, http.StatusNotFound, apperrors.StatusCode(err))
	numbers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateVillaNumber_UpdateRace(t *testing.T) {
	uc, numbers, villas := setupTestUsecase(t)
	ctx := context.Background()

	villas.On("Get", ctx, testutil.Filters(domain.ByID(1))).Return(royal, nil)
	numbers.On("Get", ctx, testutil.Filters(domain.ByVillaNo(101))).Return(&domain.VillaNumber{VillaNo: 101, VillaID: 1}, nil)
	numbers.On("Update", ctx, mock.Anything).Return(apperrors.NewNotFoundError("villa number", ""))

	err := uc.UpdateVillaNumber(ctx, 101, &VillaNumberUpdateDTO{VillaNo: 101, VillaID: 1})
	assert.Equal(t, http.StatusNotFound, apperrors.StatusCode(err))
	assert.Equal(t, []string{"villa number not found"}, apperrors.Messages(err))
}

// ==================== DELETE ====================

func TestDeleteVillaNumber(t *testing.T) {
	uc, numbers, _ := setupTestUsecase(t)
	ctx := context.Background()
	vn := &domain.VillaNumber{VillaNo: 101, VillaID: 1}

	numbers.On("Get", ctx, testutil.Filters(domain.ByVillaNo(101))).Return(vn, nil)
	numbers.On("Remove", ctx, vn).Return(nil)
	numbers.On("Get", ctx, testutil.Filters(domain.ByVillaNo(102))).Return(nil, nil)

	require.NoError(t, uc.DeleteVillaNumber(ctx, 101))
	assert.Equal(t, http.StatusNotFound, apperrors.StatusCode(uc.DeleteVillaNumber(ctx, 102)))
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusCode(uc.DeleteVillaNumber(ctx, 0)))
	numbers.AssertNumberOfCalls(t, "Remove", 1)
}

func TestDeleteVillaNumber_RemoveRace(t *testing.T) {
	uc, numbers, _ := setupTestUsecase(t)
	ctx := context.Background()
	vn := &domain.VillaNumber{VillaNo: 101}

	numbers.On("Get", ctx, mock.Anything).Return(vn, nil)
	numbers.On("Remove", ctx, vn).Return(apperrors.NewNotFoundError("villa number", ""))

	assert.Equal(t, http.StatusNotFound, apperrors.StatusCode(uc.DeleteVillaNumber(ctx, 101)))
}
