package serviceimpl

import (
	"fmt"
	"github.com/PayRam/go-chinook/internal/db"
	"github.com/PayRam/go-chinook/models"
	"github.com/PayRam/go-chinook/service"
	"gorm.io/gorm"
)

type albumService struct {
	DB *gorm.DB
}

var _ service.AlbumService = &albumService{}

func NewAlbumService(db *gorm.DB) service.AlbumService {
	return &albumService{DB: db}
}

func (s *albumService) GetAlbumTracks(albumID uint) ([]models.Track, error) {
	tracks := []models.Track{}

	query, err := db.ApplyQueryConditions(s.DB.Model(&models.Track{}), db.Equals("AlbumId", albumID))
	if err != nil {
		return nil, err
	}

	if err := query.Find(&tracks).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tracks for album %d: %w", albumID, err)
	}
	return tracks, nil
}

type genreService struct {
	DB *gorm.DB
}

var _ service.GenreService = &genreService{}

func NewGenreService(db *gorm.DB) service.GenreService {
	return &genreService{DB: db}
}

func (s *genreService) GetGenres() ([]models.Genre, error) {
	genres := []models.Genre{}
	if err := s.DB.Order("Name").Find(&genres).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch genres: %w", err)
	}
	return genres, nil
}
