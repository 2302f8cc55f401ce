package repository

import (
	"time"

	"github.com/astrogid/astrogid/internal/model"
)

// Built-in sample content shown on a fresh installation. The byline belongs
// to no real account; owner fields use the synthetic "system" id.
const (
	seedOwnerID   = "system"
	seedOwnerName = "AstroGid"
)

func seedItem(id int64, cat model.Category, title, desc, image string, created time.Time) model.ContentItem {
	return model.ContentItem{
		ID:          id,
		OwnerID:     seedOwnerID,
		OwnerName:   seedOwnerName,
		OwnerAvatar: model.DefaultAvatar,
		Category:    cat,
		Title:       title,
		Description: desc,
		Image:       image,
		CreatedAt:   created,
	}
}

func seedNews() []model.ContentItem {
	return []model.ContentItem{
		seedItem(1, model.CategoryNews,
			"James Webb telescope spots previously unknown galaxies",
			"The James Webb space telescope keeps surprising astronomers, revealing several previously unknown galaxies at the edge of the observable universe.",
			"images/m101.png",
			time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)),
		seedItem(2, model.CategoryNews,
			"Earth-sized exoplanet found in the habitable zone",
			"Astronomers have discovered an Earth-sized exoplanet orbiting inside its star's habitable zone, making it a candidate for hosting life.",
			"images/exoplanet.jpg",
			time.Date(2026, time.January, 8, 0, 0, 0, 0, time.UTC)),
	}
}

func seedArticles() []model.ContentItem {
	return []model.ContentItem{
		seedItem(101, model.CategoryArticle,
			"Getting started with astrophotography",
			"A beginner's walkthrough: choosing equipment, camera settings, stacking and processing, and tips for shooting different objects of the night sky.",
			"images/ngc2024.jpg",
			time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)),
		seedItem(102, model.CategoryArticle,
			"Nebulae: types and features",
			"Emission, reflection, dark and planetary nebulae: how each kind forms and why they matter for understanding stellar evolution.",
			"images/lagoon.jpg",
			time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC)),
		seedItem(103, model.CategoryArticle,
			"Choosing your first telescope",
			"Refractors, reflectors and catadioptrics compared: strengths, weaknesses and which observing tasks each design suits best.",
			"images/m51.png",
			time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)),
		seedItem(104, model.CategoryArticle,
			"Observing the planets of the solar system",
			"The best time to observe each planet, what an amateur telescope can actually show, and how to set up for planetary sessions.",
			"images/m20.jpg",
			time.Date(2025, time.December, 28, 0, 0, 0, 0, time.UTC)),
	}
}
