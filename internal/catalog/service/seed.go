package service

import (
	"time"

	"github.com/silverhold/codehub-backend/internal/catalog/domain"
)

// SeedProjects returns the initial catalog used when no persisted project
// collection exists yet.
func SeedProjects() []domain.Project {
	now := time.Now().UnixMilli()

	return []domain.Project{
		{
			ID:       "p1",
			Name:     "Futuristic React Dashboard",
			Language: "React",
			Type:     domain.TypeCode,
			Content: `import React from 'react';
const Dashboard = () => {
  return <div className="p-10 bg-black text-red-500">Welcome to CyberHub</div>;
};
export default Dashboard;`,
			Notes:      "A high-performance dashboard for monitoring real-time data.",
			PreviewURL: "https://picsum.photos/id/10/800/400",
			Likes:      124,
			Downloads:  45,
			AuthorID:   "brayn-1",
			CreatedAt:  now - 24*time.Hour.Milliseconds(),
		},
		{
			ID:       "p2",
			Name:     "Node.js Auth Middleware",
			Language: "Node.js",
			Type:     domain.TypeCode,
			Content: `const jwt = require('jsonwebtoken');
module.exports = (req, res, next) => {
  const token = req.header('x-auth-token');
  if (!token) return res.status(401).send('Access Denied');
  try {
    const verified = jwt.verify(token, 'secret');
    req.user = verified;
    next();
  } catch (err) { res.status(400).send('Invalid Token'); }
};`,
			Notes:      "Standard JWT middleware for protected routes.",
			PreviewURL: "https://picsum.photos/id/60/800/400",
			Likes:      89,
			Downloads:  12,
			AuthorID:   "silverhold-1",
			CreatedAt:  now - 12*time.Hour.Milliseconds(),
		},
	}
}
