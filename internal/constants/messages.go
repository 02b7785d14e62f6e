package constants

// User-facing notification text.
const (
	MsgBackendNotConfigured = "Backend URL not configured"

	// Auth
	MsgFillRequired        = "Please fill required fields."
	MsgPasswordsMismatch   = "Passwords do not match."
	MsgInvalidPhone        = "Please enter a valid phone number."
	MsgUserLoginSuccess    = "User login successful!"
	MsgAdminLoginSuccess   = "Admin login successful!"
	MsgLoginFailed         = "Login failed. Please check your credentials."
	MsgSignupSuccess       = "Signup successful! Please login."
	MsgSignupFailed        = "Signup failed. Please check your details."
	MsgEnterEmail          = "Please enter your email address."
	MsgResetLinkSent       = "Password reset link has been sent to your email!"
	MsgResetLinkFailed     = "Failed to send reset link. Please try again."
	MsgFillAllFields       = "Please fill in all fields."
	MsgPasswordTooShort    = "Password must be at least 6 characters."
	MsgPasswordResetDone   = "Password reset successfully! Redirecting to login..."
	MsgPasswordResetFailed = "Failed to reset password. Please try again."
	MsgLoggedOut           = "Logged out."

	// Catalog
	MsgCatalogRequired     = "Please fill name, category, price and type."
	MsgNormalNeedsImage    = "Normal items require an image."
	MsgPremiumNeedsMedia   = "Premium items require both image and video."
	MsgCatalogCreated      = "Catalog item created."
	MsgCatalogCreateFailed = "Failed to create item."
	MsgServerError         = "Server error."
	MsgCatalogLoadFailed   = "Failed to load item details"
	MsgCatalogNameMissing  = "Item name not found"
	MsgCatalogUpdated      = "Catalog item updated successfully!"
	MsgCatalogUpdateFailed = "Failed to update item"

	// Lists
	MsgLoadFailed      = "Failed to load"
	MsgLeadsLoadFailed = "Failed to load leads"
	MsgDeleteFailed    = "Delete failed"
	MsgDeleted         = "Deleted successfully"

	// Leads
	MsgLeadNameRequired    = "Name is required"
	MsgLeadAddressRequired = "Address is required"
	MsgLeadContactRequired = "Contact number is required"
	MsgLeadContactInvalid  = "Enter a valid contact number"
	MsgLeadStatusInvalid   = "Please choose a valid lead status."
	MsgArchitectInvalid    = "Please choose a valid architect status."
	MsgLeadCreated         = "Lead created successfully"
	MsgLeadCreateFailed    = "Failed to create lead"
	MsgLeadLoadFailed      = "Failed to load lead"
	MsgLeadUpdated         = "Lead updated successfully"
	MsgLeadUpdateFailed    = "Failed to update lead"
	MsgLeadIDMissing       = "Lead id not found"

	// Projects
	MsgProjectHeadRequired = "Project head is required"
	MsgUserEmailRequired   = "User email is required"
	MsgProjectCreated      = "Project created successfully!"
	MsgProjectCreateFailed = "Create failed"
	MsgKitchenOptions      = "Please choose a kitchen type and theme."
	MsgWardrobeTypeInvalid = "Unknown wardrobe type"
	MsgApplianceInvalid    = "Unknown appliance"

	// Designs
	MsgDesignNameRequired = "Item name is required."
	MsgDesignFileRequired = "Please select an image file or a design file."
	MsgDesignItemsEmpty   = "Please add at least one design item."
	MsgDesignsAdded       = "Designs added successfully!"
	MsgDesignsAddFailed   = "Failed to add designs"
)
