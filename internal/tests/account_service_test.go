package tests

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"tableside/internal/domain"
	"tableside/internal/mocks"
	"tableside/internal/service"
)

func TestAccountService_Register(t *testing.T) {
	customerRole := &domain.Role{ID: 4, Name: "customer"}

	tests := []struct {
		name      string
		username  string
		password  string
		email     string
		setupMock func(*mocks.UserRepository)
		wantErr   error
	}{
		{
			name:     "valid registration",
			username: "alice",
			password: "secret",
			email:    "a@x.com",
			setupMock: func(m *mocks.UserRepository) {
				m.On("CountByUsername", "alice").Return(0, nil).Once()
				m.On("CountByEmail", "a@x.com").Return(0, nil).Once()
				m.On("GetRoleByName", "customer").Return(customerRole, nil).Once()
				m.On("CreateUser", mock.AnythingOfType("*domain.User")).Return(nil).Once()
			},
		},
		{
			name:      "empty username",
			username:  "",
			password:  "secret",
			email:     "a@x.com",
			setupMock: func(m *mocks.UserRepository) {},
			wantErr:   service.ErrMissingField,
		},
		{
			name:      "empty password",
			username:  "alice",
			password:  "",
			email:     "a@x.com",
			setupMock: func(m *mocks.UserRepository) {},
			wantErr:   service.ErrMissingField,
		},
		{
			name:     "duplicate username",
			username: "alice",
			password: "secret",
			email:    "other@x.com",
			setupMock: func(m *mocks.UserRepository) {
				m.On("CountByUsername", "alice").Return(1, nil).Once()
			},
			wantErr: service.ErrUsernameTaken,
		},
		{
			name:     "duplicate email",
			username: "bob",
			password: "secret",
			email:    "a@x.com",
			setupMock: func(m *mocks.UserRepository) {
				m.On("CountByUsername", "bob").Return(0, nil).Once()
				m.On("CountByEmail", "a@x.com").Return(1, nil).Once()
			},
			wantErr: service.ErrEmailTaken,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.UserRepository)
			svc := service.NewAccountService(mockRepo, new(mocks.SessionStore))

			testCase.setupMock(mockRepo)

			user, err := svc.Register(testCase.username, testCase.password, testCase.email)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, customerRole.ID, user.RoleID)
				assert.NotEqual(t, testCase.password, user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(testCase.password)))
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAccountService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	assert.NoError(t, err)

	alice := &domain.User{ID: 1, Username: "alice", PasswordHash: string(hash), Email: "a@x.com", RoleID: 4}
	customerRole := &domain.Role{ID: 4, Name: "customer"}

	t.Run("valid credentials", func(t *testing.T) {
		mockRepo := new(mocks.UserRepository)
		mockSessions := new(mocks.SessionStore)
		svc := service.NewAccountService(mockRepo, mockSessions)

		mockRepo.On("GetUserByUsername", "alice").Return(alice, nil).Once()
		mockRepo.On("GetRole", 4).Return(customerRole, nil).Once()
		mockSessions.On("Save", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("*domain.Session")).
			Return(nil).Once()

		token, session, err := svc.Login(context.Background(), "alice", "secret")

		assert.NoError(t, err)
		assert.Len(t, token, 32)
		assert.Equal(t, "alice", session.Username)
		assert.Equal(t, "customer", session.RoleName)
		mockSessions.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := new(mocks.UserRepository)
		svc := service.NewAccountService(mockRepo, new(mocks.SessionStore))

		mockRepo.On("GetUserByUsername", "alice").Return(alice, nil).Once()

		_, _, err := svc.Login(context.Background(), "alice", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidPassword)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo := new(mocks.UserRepository)
		svc := service.NewAccountService(mockRepo, new(mocks.SessionStore))

		mockRepo.On("GetUserByUsername", "ghost").Return(nil, sql.ErrNoRows).Once()

		_, _, err := svc.Login(context.Background(), "ghost", "secret")
		assert.ErrorIs(t, err, service.ErrUnknownUser)
	})
}

func TestAccountService_RegisterThenLogin(t *testing.T) {
	// The register/login pair must round-trip on the stored hash.
	mockRepo := new(mocks.UserRepository)
	mockSessions := new(mocks.SessionStore)
	svc := service.NewAccountService(mockRepo, mockSessions)

	customerRole := &domain.Role{ID: 4, Name: "customer"}
	var created *domain.User

	mockRepo.On("CountByUsername", "alice").Return(0, nil).Once()
	mockRepo.On("CountByEmail", "a@x.com").Return(0, nil).Once()
	mockRepo.On("GetRoleByName", "customer").Return(customerRole, nil).Once()
	mockRepo.On("CreateUser", mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*domain.User)
			created.ID = 1
		}).Return(nil).Once()

	_, err := svc.Register("alice", "secret", "a@x.com")
	assert.NoError(t, err)

	mockRepo.On("GetUserByUsername", "alice").Return(created, nil).Once()
	mockRepo.On("GetRole", 4).Return(customerRole, nil).Once()
	mockSessions.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	_, session, err := svc.Login(context.Background(), "alice", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "customer", session.RoleName)
}

func TestAccountService_RoleID(t *testing.T) {
	mockRepo := new(mocks.UserRepository)
	svc := service.NewAccountService(mockRepo, new(mocks.SessionStore))

	mockRepo.On("GetUserByUsername", "alice").
		Return(&domain.User{ID: 1, Username: "alice", RoleID: 2}, nil).Once()
	mockRepo.On("GetUserByUsername", "ghost").Return(nil, sql.ErrNoRows).Once()

	roleID, err := svc.RoleID("alice")
	assert.NoError(t, err)
	assert.Equal(t, 2, roleID)

	_, err = svc.RoleID("ghost")
	assert.ErrorIs(t, err, service.ErrUnknownUser)
}
