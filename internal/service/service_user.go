// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-ebics-client/internal/crypto"
	"github.com/MKhiriev/go-ebics-client/internal/letters"
	"github.com/MKhiriev/go-ebics-client/internal/logger"
	"github.com/MKhiriev/go-ebics-client/internal/store"
	"github.com/MKhiriev/go-ebics-client/models"
)

type userService struct {
	registry    *Registry
	storage     store.EntityStorage
	directories store.DirectoryProvisioner
	keyStore    store.KeyStore
	keyChain    crypto.KeyChainService
	renderer    letters.Renderer
	cfg         models.Configuration

	logger *logger.Logger
}

func NewUserService(
	registry *Registry,
	storages *store.ClientStorages,
	keyChain crypto.KeyChainService,
	renderer letters.Renderer,
	cfg models.Configuration,
	logger *logger.Logger,
) UserService {
	return &userService{
		registry:    registry,
		storage:     storages.EntityStorage,
		directories: storages.Directories,
		keyStore:    storages.KeyStore,
		keyChain:    keyChain,
		renderer:    renderer,
		cfg:         cfg,
		logger:      logger,
	}
}

func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	log := s.logger.ForUser(req.HostID, req.PartnerID, req.UserID)

	if req.Credentials == nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, ErrNoCredentials)
	}

	bank := s.registry.CreateBank(req.BankURL, req.BankName, req.HostID, req.UseCertificate)
	partner := s.registry.CreatePartner(bank, req.PartnerID)

	password, err := req.Credentials.Password()
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	keys, err := s.keyChain.GenerateUserKeys()
	if err != nil {
		return nil, fmt.Errorf("generate user keys: %w", err)
	}
	sealed, err := s.keyChain.SealKeys(password, keys)
	if err != nil {
		return nil, fmt.Errorf("seal user keys: %w", err)
	}
	user := s.registry.CreateUser(partner, req.UserID, req.Profile, keys, sealed)

	if err = s.directories.EnsureDirectories(s.cfg.UserDirectories(req.UserID)...); err != nil {
		log.Err(err).Str("func", "userService.CreateUser").Msg("error creating user directories")
		return nil, fmt.Errorf("%w: user directories: %w", ErrPersistence, err)
	}

	if req.SaveCertificates {
		if err = s.keyStore.SaveUserKeys(s.cfg.KeystoreDirectory(req.UserID), user); err != nil {
			log.Err(err).Str("func", "userService.CreateUser").Msg("error saving user keys to keystore")
			return nil, fmt.Errorf("%w: keystore: %w", ErrPersistence, err)
		}
	}

	for _, entity := range []models.Persistable{bank, partner, user} {
		if err = s.storage.Serialize(ctx, entity); err != nil {
			log.Err(err).Str("func", "userService.CreateUser").
				Str("key", entity.StorageKey()).
				Msg("error persisting entity")
			return nil, fmt.Errorf("%w: %s: %w", ErrPersistence, entity.StorageKey(), err)
		}
	}

	if err = s.CreateLetters(user, req.UseCertificate); err != nil {
		return nil, err
	}

	log.Info().Str("func", "userService.CreateUser").Msg("user created")
	return user, nil
}

func (s *userService) LoadUser(ctx context.Context, hostID, partnerID, userID string, credentials models.CredentialSupplier) (*models.User, error) {
	log := s.logger.ForUser(hostID, partnerID, userID)

	if credentials == nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, ErrNoCredentials)
	}

	bank, err := readRecord(ctx, s.storage, models.BankKey(hostID), models.ReadBank)
	if err != nil {
		log.Err(err).Str("func", "userService.LoadUser").Msg("error loading bank")
		return nil, fmt.Errorf("%w: bank %s: %w", ErrLoad, hostID, err)
	}
	partner, err := readRecord(ctx, s.storage, models.PartnerKey(partnerID), func(r io.Reader) (*models.Partner, error) {
		return models.ReadPartner(bank, r)
	})
	if err != nil {
		log.Err(err).Str("func", "userService.LoadUser").Msg("error loading partner")
		return nil, fmt.Errorf("%w: partner %s: %w", ErrLoad, partnerID, err)
	}
	user, err := readRecord(ctx, s.storage, models.UserKey(userID), func(r io.Reader) (*models.User, error) {
		return models.ReadUser(partner, r)
	})
	if err != nil {
		log.Err(err).Str("func", "userService.LoadUser").Msg("error loading user")
		return nil, fmt.Errorf("%w: user %s: %w", ErrLoad, userID, err)
	}

	password, err := credentials.Password()
	if err != nil {
		return nil, fmt.Errorf("%w: read password: %w", ErrLoad, err)
	}
	keys, err := s.keyChain.OpenKeys(password, user.SealedKeys())
	if err != nil {
		log.Err(err).Str("func", "userService.LoadUser").Msg("error unlocking user keys")
		return nil, fmt.Errorf("%w: unlock keys of user %s: %w", ErrLoad, userID, err)
	}
	user.UnlockKeys(keys)

	s.registry.RegisterBank(bank)
	s.registry.RegisterPartner(partner)
	s.registry.RegisterUser(user)

	log.Info().Str("func", "userService.LoadUser").Msg("user loaded")
	return user, nil
}

func (s *userService) CreateLetters(user *models.User, useCertificate bool) error {
	partner := user.Partner()
	bank := partner.Bank()
	log := s.logger.ForUser(bank.HostID(), partner.PartnerID(), user.UserID())

	bank.SetUseCertificate(useCertificate)

	dir := s.cfg.LettersDirectory(user.UserID())
	for _, kind := range models.LetterKinds() {
		path := filepath.Join(dir, kind.FileName())
		if err := s.writeLetter(user, kind, path); err != nil {
			log.Err(err).Str("func", "userService.CreateLetters").
				Str("file", path).
				Msg("error writing letter")
			return fmt.Errorf("%w: letter %s: %w", ErrPersistence, kind, err)
		}
	}

	log.Info().Str("func", "userService.CreateLetters").Str("dir", dir).Msg("letters written")
	return nil
}

func (s *userService) writeLetter(user *models.User, kind models.LetterKind, path string) (err error) {
	letter, err := s.renderer.Render(user, kind)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	_, err = io.Copy(f, letter)
	return err
}

func readRecord[T any](ctx context.Context, storage store.EntityStorage, key string, decode func(io.Reader) (T, error)) (T, error) {
	var zero T

	rc, err := storage.Deserialize(ctx, key)
	if err != nil {
		return zero, err
	}
	defer rc.Close()

	entity, err := decode(rc)
	if err != nil {
		return zero, err
	}
	return entity, nil
}
