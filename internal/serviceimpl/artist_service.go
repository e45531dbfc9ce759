package serviceimpl

import (
	"errors"
	"fmt"
	"github.com/PayRam/go-chinook/internal/db"
	"github.com/PayRam/go-chinook/models"
	"github.com/PayRam/go-chinook/request"
	"github.com/PayRam/go-chinook/response"
	"github.com/PayRam/go-chinook/service"
	"gorm.io/gorm"
)

type artistService struct {
	DB *gorm.DB
}

var _ service.ArtistService = &artistService{}

func NewArtistService(db *gorm.DB) service.ArtistService {
	return &artistService{DB: db}
}

// GetArtists returns all artists ordered by name unless another sort is requested
func (s *artistService) GetArtists(req request.GetArtistsRequest) ([]models.Artist, error) {
	artists := []models.Artist{}

	query, err := request.ApplyPaginationConditions(s.DB.Model(&models.Artist{}), req.PaginationConditions, request.ArtistSortColumns, "Name")
	if err != nil {
		return nil, err
	}

	if err := query.Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch artists: %w", err)
	}
	return artists, nil
}

func (s *artistService) GetArtist(id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := s.DB.First(&artist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("artist %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to fetch artist %d: %w", id, err)
	}
	return &artist, nil
}

func (s *artistService) CreateArtist(req request.CreateArtistRequest) (*models.Artist, error) {
	artist := &models.Artist{Name: &req.Name}
	if err := s.DB.Create(artist).Error; err != nil {
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}
	return artist, nil
}

// UpdateArtist renames an artist and returns the number of updated rows
func (s *artistService) UpdateArtist(id uint, req request.UpdateArtistRequest) (int64, error) {
	result := s.DB.Model(&models.Artist{}).Where("ArtistId = ?", id).Update("Name", req.Name)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update artist %d: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}

func (s *artistService) DeleteArtist(id uint) (int64, error) {
	result := s.DB.Delete(&models.Artist{}, id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete artist %d: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}

// SearchArtists returns the artists whose name contains name
func (s *artistService) SearchArtists(name string) ([]models.Artist, error) {
	artists := []models.Artist{}

	query, err := db.ApplyQueryConditions(s.DB.Model(&models.Artist{}), db.Contains("Name", name))
	if err != nil {
		return nil, err
	}

	if err := query.Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("failed to search artists for name: %s, error: %w", name, err)
	}
	return artists, nil
}

// GetArtistAlbums lists every track of the artist's albums with its genre
func (s *artistService) GetArtistAlbums(id uint) ([]response.AlbumTrackRow, error) {
	rows := []response.AlbumTrackRow{}

	err := s.DB.Table("albums").
		Select("albums.AlbumId, albums.Title, genres.Name AS Genre, tracks.Name AS Track").
		Joins("JOIN tracks ON albums.AlbumId = tracks.AlbumId").
		Joins("JOIN genres ON tracks.GenreId = genres.GenreId").
		Where("albums.ArtistId = ?", id).
		Order("albums.Title, tracks.TrackId").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch albums for artist %d: %w", id, err)
	}
	return rows, nil
}
