package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"health-connect/configuration"
	"health-connect/models"

	"github.com/gin-gonic/gin"
)

// GetResources returns the directory filtered by free-text search,
// category and maximum distance. No filter combination is an error; an
// empty match is an empty list.
func GetResources(c *gin.Context) {
	var resources []models.Resource
	if err := configuration.DB.Order("distance asc").Find(&resources).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Couldn't get resources"})
		return
	}

	search := c.Query("search")
	resourceType := c.DefaultQuery("type", "all")
	distance := c.DefaultQuery("distance", "all")

	maxDistance := -1.0
	if distance != "all" {
		parsed, err := strconv.ParseFloat(distance, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid distance filter"})
			return
		}
		maxDistance = parsed
	}

	filtered := FilterResources(resources, search, resourceType, maxDistance)

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Resources fetched successfully",
		"data":    filtered,
	})
}

// FilterResources applies the directory predicates: case-insensitive
// substring match on name or any service tag, exact type match, and
// distance ceiling (negative means no ceiling).
func FilterResources(resources []models.Resource, search, resourceType string, maxDistance float64) []models.Resource {
	term := strings.ToLower(search)

	filtered := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if term != "" && !matchesSearch(r, term) {
			continue
		}
		if resourceType != "all" && r.Type != resourceType {
			continue
		}
		if maxDistance >= 0 && r.Distance > maxDistance {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func matchesSearch(r models.Resource, term string) bool {
	if strings.Contains(strings.ToLower(r.Name), term) {
		return true
	}
	for _, service := range r.Services {
		if strings.Contains(strings.ToLower(service), term) {
			return true
		}
	}
	return false
}
