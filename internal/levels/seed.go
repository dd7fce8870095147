package levels

func init() {
	if err := validateLevels(seedLevels); err != nil {
		panic(err)
	}
	catalogue = seedLevels
}

var seedLevels = []Level{
	{
		ID:            1,
		Title:         "Basic Navigation",
		Description:   "Learn to navigate the file system with fundamental commands",
		Commands:      []string{"pwd", "ls", "cd"},
		Points:        50,
		EstimatedTime: "10 min",
		Tutorial: Tutorial{
			Title:   "Navigation Basics",
			Content: "Navigation is the foundation of using Linux. These commands help you understand where you are and move around the file system.",
			Why:     "Every Linux user needs to navigate the file system efficiently. These commands are used constantly in daily tasks, from finding files to organizing directories. Mastering navigation is essential for any Linux operation.",
			Examples: []Example{
				{"pwd", "Shows your current directory location"},
				{"ls", "Lists files and folders in current directory"},
				{"ls -la", "Lists all files with detailed information"},
				{"cd /home", "Changes to the /home directory"},
				{"cd ..", "Goes up one directory level"},
			},
		},
		Exercises: []Exercise{
			{
				Instruction:     "Check your current directory location",
				ExpectedCommand: "pwd",
				Hint:            "Use the command that prints the working directory",
			},
			{
				Instruction:     "List all files in the current directory",
				ExpectedCommand: "ls",
				Hint:            "Use the list command",
			},
			{
				Instruction:     "Change to the documents directory",
				ExpectedCommand: "cd documents",
				Hint:            "Use cd followed by the directory name",
			},
			{
				Instruction:     "List files with detailed information",
				ExpectedCommand: "ls -l",
				Hint:            "Use ls with the -l flag for long format",
			},
		},
	},
	{
		ID:            2,
		Title:         "File Operations",
		Description:   "Create, copy, move, and delete files and directories",
		Commands:      []string{"touch", "mkdir", "cp", "mv", "rm"},
		Points:        75,
		EstimatedTime: "15 min",
		Tutorial: Tutorial{
			Title:   "File Management",
			Content: "File operations are essential for organizing and managing your data. Learn to create, copy, move, and remove files efficiently.",
			Why:     "File management is crucial for maintaining an organized system. Whether you're backing up important files, organizing projects, or cleaning up disk space, these commands are indispensable for daily Linux usage.",
			Examples: []Example{
				{"touch myfile.txt", "Creates an empty file named myfile.txt"},
				{"mkdir newfolder", "Creates a new directory called newfolder"},
				{"cp file1.txt file2.txt", "Copies file1.txt to file2.txt"},
				{"mv oldname.txt newname.txt", "Renames oldname.txt to newname.txt"},
				{"rm unwanted.txt", "Deletes the unwanted.txt file"},
			},
		},
		Exercises: []Exercise{
			{
				Instruction:     "Create a new file called 'test.txt'",
				ExpectedCommand: "touch test.txt",
				Hint:            "Use touch to create an empty file",
			},
			{
				Instruction:     "Create a directory named 'backup'",
				ExpectedCommand: "mkdir backup",
				Hint:            "Use mkdir to create a new directory",
			},
			{
				Instruction:     "Copy report.txt to backup_report.txt",
				ExpectedCommand: "cp report.txt backup_report.txt",
				Hint:            "Use cp followed by source and destination",
			},
		},
	},
	{
		ID:            3,
		Title:         "File Permissions",
		Description:   "Understand and modify file permissions and ownership",
		Commands:      []string{"chmod", "chown", "ls -l"},
		Points:        100,
		EstimatedTime: "20 min",
		Tutorial: Tutorial{
			Title:   "File Permissions & Security",
			Content: "File permissions control who can read, write, or execute files. This is fundamental to Linux security and multi-user systems.",
			Why:     "Understanding permissions is crucial for system security, collaboration, and preventing unauthorized access. It's essential for server administration, development environments, and protecting sensitive data.",
			Examples: []Example{
				{"ls -l", "Shows detailed file information including permissions"},
				{"chmod 755 script.sh", "Sets read/write/execute for owner, read/execute for others"},
				{"chmod +x program", "Makes a file executable"},
				{"chown user:group file.txt", "Changes file ownership to user and group"},
			},
		},
		Exercises: []Exercise{
			{
				Instruction:     "List files with detailed permissions",
				ExpectedCommand: "ls -l",
				Hint:            "Use ls with the -l flag for long format",
			},
			{
				Instruction:     "Make a file executable for everyone",
				ExpectedCommand: "chmod +x test.txt",
				Hint:            "Use chmod +x to add execute permission",
			},
		},
	},
	{
		ID:            4,
		Title:         "Text Processing",
		Description:   "Work with text files using cat, grep, and other tools",
		Commands:      []string{"cat", "grep", "head", "tail", "wc"},
		Points:        90,
		EstimatedTime: "18 min",
		Tutorial: Tutorial{
			Title:   "Text File Processing",
			Content: "Text processing is powerful in Linux. Learn to view, search, and analyze text files efficiently.",
			Why:     "Text processing is essential for log analysis, configuration file management, data extraction, and automation. These skills are vital for system administration, development, and data analysis tasks.",
			Examples: []Example{
				{"cat file.txt", "Displays the entire contents of file.txt"},
				{"grep 'pattern' file.txt", "Searches for 'pattern' in file.txt"},
				{"head -10 file.txt", "Shows first 10 lines of file.txt"},
				{"tail -f logfile.log", "Follows new lines added to logfile.log"},
				{"wc -l file.txt", "Counts lines in file.txt"},
			},
		},
		Exercises: []Exercise{
			{
				Instruction:     "Display the contents of notes.md file",
				ExpectedCommand: "cat notes.md",
				Hint:            "Use cat to display file contents",
			},
			{
				Instruction:     "Search for the word 'Linux' in report.txt",
				ExpectedCommand: "grep Linux report.txt",
				Hint:            "Use grep to search for patterns in files",
			},
			{
				Instruction:     "Count the lines in report.txt",
				ExpectedCommand: "wc -l report.txt",
				Hint:            "Use wc -l to count lines in a file",
			},
		},
	},
	{
		ID:            5,
		Title:         "Process Management",
		Description:   "Monitor and control running processes",
		Commands:      []string{"ps", "top", "kill", "killall", "jobs"},
		Points:        120,
		EstimatedTime: "22 min",
		Tutorial: Tutorial{
			Title:   "Process Management",
			Content: "Learn to monitor system processes, check resource usage, and control running applications.",
			Why:     "Process management is critical for system performance, troubleshooting, and resource optimization. These skills help identify problematic processes, monitor system health, and maintain optimal performance.",
			Examples: []Example{
				{"ps aux", "Lists all running processes with details"},
				{"top", "Shows real-time process information and system stats"},
				{"kill 1234", "Terminates process with ID 1234"},
				{"killall firefox", "Terminates all processes named firefox"},
				{"jobs", "Shows jobs running in current terminal"},
			},
		},
		Exercises: []Exercise{
			{
				Instruction:     "List all running processes",
				ExpectedCommand: "ps aux",
				Hint:            "Use ps aux to see all processes",
			},
			{
				Instruction:     "Show real-time system processes",
				ExpectedCommand: "top",
				Hint:            "Use top to see live process information",
			},
			{
				Instruction:     "Show background jobs in current terminal",
				ExpectedCommand: "jobs",
				Hint:            "Use jobs to see running background tasks",
			},
		},
	},
	{
		ID:            6,
		Title:         "System Information",
		Description:   "Get information about your system and hardware",
		Commands:      []string{"uname", "df", "du", "free", "uptime"},
		Points:        85,
		EstimatedTime: "15 min",
		Tutorial: Tutorial{
			Title:   "System Information Commands",
			Content: "Monitor system resources, check disk usage, and gather information about your Linux system.",
			Why:     "System monitoring is essential for maintaining healthy systems, planning capacity, troubleshooting performance issues, and ensuring optimal resource utilization in both personal and server environments.",
			Examples: []Example{
				{"uname -a", "Shows detailed system information"},
				{"df -h", "Displays disk space usage in human-readable format"},
				{"du -sh folder", "Shows size of folder in human-readable format"},
				{"free -h", "Shows memory usage information"},
				{"uptime", "Shows how long system has been running"},
			},
		},
		Exercises: []Exercise{
			{
				Instruction:     "Check disk space usage",
				ExpectedCommand: "df -h",
				Hint:            "Use df -h to see disk usage in readable format",
			},
			{
				Instruction:     "Check available memory",
				ExpectedCommand: "free -h",
				Hint:            "Use free -h to see memory usage",
			},
			{
				Instruction:     "Check system uptime",
				ExpectedCommand: "uptime",
				Hint:            "Use uptime to see how long the system has been running",
			},
		},
	},
	{
		ID:            7,
		Title:         "Network Commands",
		Description:   "Basic networking tools and connectivity testing",
		Commands:      []string{"ping", "wget", "curl", "netstat", "ss"},
		Points:        95,
		EstimatedTime: "18 min",
		Tutorial: Tutorial{
			Title:   "Network Diagnostics",
			Content: "Learn essential networking commands for connectivity testing, file downloading, and network analysis.",
			Why:     "Network commands are vital for troubleshooting connectivity issues, downloading files, testing server responses, and monitoring network connections in both development and production environments.",
			Examples: []Example{
				{"ping google.com", "Tests connectivity to google.com"},
				{"wget https://example.com/file.zip", "Downloads file.zip from example.com"},
				{"curl -I https://example.com", "Gets HTTP headers from example.com"},
				{"netstat -tuln", "Shows listening network ports"},
				{"ss -tuln", "Modern alternative to netstat"},
			},
		},
		Exercises: []Exercise{
			{
				Instruction:     "Test connectivity to google.com",
				ExpectedCommand: "ping google.com",
				Hint:            "Use ping to test network connectivity",
			},
			{
				Instruction:     "Download a file using wget",
				ExpectedCommand: "wget https://example.com/file.txt",
				Hint:            "Use wget followed by the URL",
			},
		},
	},
	{
		ID:            8,
		Title:         "Archives & Compression",
		Description:   "Create and extract compressed archives",
		Commands:      []string{"tar", "gzip", "gunzip", "zip", "unzip"},
		Points:        110,
		EstimatedTime: "20 min",
		Tutorial: Tutorial{
			Title:   "File Compression & Archives",
			Content: "Learn to create, compress, and extract archives for efficient file storage and transfer.",
			Why:     "Archive management is essential for backup strategies, software distribution, file transfer optimization, and storage space management. These skills are crucial for system administration and development workflows.",
			Examples: []Example{
				{"tar -czf archive.tar.gz folder/", "Creates compressed archive of folder"},
				{"tar -xzf archive.tar.gz", "Extracts compressed archive"},
				{"gzip file.txt", "Compresses file.txt to file.txt.gz"},
				{"zip -r backup.zip documents/", "Creates zip archive of documents folder"},
				{"unzip backup.zip", "Extracts zip archive"},
			},
		},
		Exercises: []Exercise{
			{
				Instruction:     "Create a compressed tar archive of documents directory",
				ExpectedCommand: "tar -czf documents.tar.gz documents/",
				Hint:            "Use tar -czf to create compressed archive",
			},
			{
				Instruction:     "Extract a tar.gz archive",
				ExpectedCommand: "tar -xzf backup.tar.gz",
				Hint:            "Use tar -xzf to extract compressed archive",
			},
		},
	},
	{
		ID:            9,
		Title:         "Advanced Text Processing",
		Description:   "Master advanced text manipulation with awk, sed, and more",
		Commands:      []string{"awk", "sed", "sort", "uniq", "cut"},
		Points:        130,
		EstimatedTime: "25 min",
		Tutorial: Tutorial{
			Title:   "Advanced Text Manipulation",
			Content: "Master powerful text processing tools for data extraction, transformation, and analysis.",
			Why:     "Advanced text processing is invaluable for log analysis, data processing, configuration management, and automation scripts. These tools can replace complex programming tasks with simple command-line operations.",
			Examples: []Example{
				{"awk '{print $1}' file.txt", "Prints first column of each line"},
				{"sed 's/old/new/g' file.txt", "Replaces 'old' with 'new' in file"},
				{"sort file.txt", "Sorts lines in file alphabetically"},
				{"uniq -c sorted.txt", "Counts unique lines in sorted file"},
				{"cut -d',' -f2 data.csv", "Extracts second column from CSV"},
			},
		},
		Exercises: []Exercise{
			{
				Instruction:     "Print the first column of a file using awk",
				ExpectedCommand: "awk '{print $1}' report.txt",
				Hint:            "Use awk to print specific columns",
			},
			{
				Instruction:     "Replace text in a file using sed",
				ExpectedCommand: "sed 's/Linux/GNU-Linux/g' notes.md",
				Hint:            "Use sed with s/old/new/g pattern",
			},
		},
	},
	{
		ID:            10,
		Title:         "Shell Scripting Basics",
		Description:   "Introduction to bash scripting and automation",
		Commands:      []string{"bash", "echo", "read", "if", "for"},
		Points:        150,
		EstimatedTime: "30 min",
		Tutorial: Tutorial{
			Title:   "Shell Scripting Fundamentals",
			Content: "Learn to create bash scripts for automation and combining multiple commands into reusable programs.",
			Why:     "Shell scripting enables automation of repetitive tasks, system administration, deployment processes, and complex workflows. It's essential for DevOps, system administration, and efficient command-line productivity.",
			Examples: []Example{
				{"#!/bin/bash", "Shebang line to specify bash interpreter"},
				{"echo 'Hello World'", "Prints text to terminal"},
				{"read -p 'Enter name: ' name", "Prompts user for input"},
				{"if [ -f file.txt ]; then echo 'exists'; fi", "Conditional check if file exists"},
				{"for i in {1..5}; do echo $i; done", "Loop that prints numbers 1-5"},
			},
		},
		Exercises: []Exercise{
			{
				Instruction:     "Print 'Hello Linux' to the terminal",
				ExpectedCommand: "echo 'Hello Linux'",
				Hint:            "Use echo to print text",
			},
			{
				Instruction:     "Create a simple for loop that counts from 1 to 3",
				ExpectedCommand: "for i in {1..3}; do echo $i; done",
				Hint:            "Use for loop with range {1..3}",
			},
		},
	},
	{
		ID:            11,
		Title:         "File Search and Find",
		Description:   "Master file searching with find, locate, and which commands",
		Commands:      []string{"find", "locate", "which", "whereis", "type"},
		Points:        105,
		EstimatedTime: "20 min",
		Tutorial: Tutorial{
			Title:   "File Search Mastery",
			Content: "Learn powerful search commands to locate files, directories, and executables across your system.",
			Why:     "File searching is essential for system administration, debugging, and efficient file management. These commands help you quickly locate resources, troubleshoot missing files, and understand your system structure.",
			Examples: []Example{
				{"find /home -name '*.txt'", "Finds all .txt files in /home directory"},
				{"find . -type d -name 'project*'", "Finds directories starting with 'project'"},
				{"locate filename.txt", "Quickly locates filename.txt using database"},
				{"which python", "Shows path to python executable"},
				{"whereis bash", "Shows locations of bash binary and manual"},
			},
		},
		Exercises: []Exercise{
			{
				Instruction:     "Find all .txt files in the current directory and subdirectories",
				ExpectedCommand: "find . -name '*.txt'",
				Hint:            "Use find with -name pattern to search for files",
			},
			{
				Instruction:     "Locate the bash executable path",
				ExpectedCommand: "which bash",
				Hint:            "Use which to find executable locations",
			},
			{
				Instruction:     "Find all directories named 'projects'",
				ExpectedCommand: "find . -type d -name 'projects'",
				Hint:            "Use find with -type d to search for directories",
			},
		},
	},
	{
		ID:            12,
		Title:         "Environment Variables",
		Description:   "Work with environment variables and system configuration",
		Commands:      []string{"env", "export", "echo $VAR", "printenv", "set"},
		Points:        95,
		EstimatedTime: "18 min",
		Tutorial: Tutorial{
			Title:   "Environment Configuration",
			Content: "Master environment variables to configure your shell environment and system behavior.",
			Why:     "Environment variables control application behavior, system paths, and user preferences. Understanding them is crucial for software development, system administration, and customizing your Linux experience.",
			Examples: []Example{
				{"env", "Lists all environment variables"},
				{"export PATH=$PATH:/new/path", "Adds a new directory to PATH"},
				{"echo $HOME", "Displays the HOME variable value"},
				{"printenv USER", "Shows specific environment variable"},
				{"export EDITOR=vim", "Sets default text editor"},
			},
		},
		Exercises: []Exercise{
			{
				Instruction:     "Display your home directory path",
				ExpectedCommand: "echo $HOME",
				Hint:            "Use echo with $HOME variable",
			},
			{
				Instruction:     "List all environment variables",
				ExpectedCommand: "env",
				Hint:            "Use env command to see all variables",
			},
			{
				Instruction:     "Show your current username",
				ExpectedCommand: "echo $USER",
				Hint:            "Use echo with $USER variable",
			},
		},
	},
	{
		ID:            13,
		Title:         "Package Management",
		Description:   "Install and manage software packages",
		Commands:      []string{"apt", "apt-get", "dpkg", "snap", "flatpak"},
		Points:        115,
		EstimatedTime: "22 min",
		Tutorial: Tutorial{
			Title:   "Software Package Management",
			Content: "Learn to install, update, and remove software packages using various package managers.",
			Why:     "Package management is essential for maintaining software, security updates, and installing new applications. Modern Linux systems rely heavily on package managers for software distribution and dependency resolution.",
			Examples: []Example{
				{"apt update", "Updates package repository information"},
				{"apt install vim", "Installs vim text editor"},
				{"apt remove firefox", "Removes firefox package"},
				{"dpkg -l", "Lists all installed packages"},
				{"snap list", "Shows installed snap packages"},
			},
		},
		Exercises: []Exercise{
			{
				Instruction:     "Update package repository information",
				ExpectedCommand: "apt update",
				Hint:            "Use apt update to refresh package lists",
			},
			{
				Instruction:     "List all installed packages",
				ExpectedCommand: "dpkg -l",
				Hint:            "Use dpkg -l to see installed packages",
			},
		},
	},
	{
		ID:            14,
		Title:         "System Monitoring",
		Description:   "Monitor system performance and resource usage",
		Commands:      []string{"htop", "iotop", "vmstat", "iostat", "lsof"},
		Points:        125,
		EstimatedTime: "24 min",
		Tutorial: Tutorial{
			Title:   "Advanced System Monitoring",
			Content: "Master advanced monitoring tools to analyze system performance, resource usage, and troubleshoot issues.",
			Why:     "System monitoring is critical for maintaining optimal performance, identifying bottlenecks, and preventing system failures. These skills are essential for system administrators and DevOps professionals.",
			Examples: []Example{
				{"htop", "Interactive process viewer with real-time updates"},
				{"iotop", "Shows disk I/O usage by processes"},
				{"vmstat 5", "Reports virtual memory statistics every 5 seconds"},
				{"iostat -x 1", "Shows extended disk statistics every second"},
				{"lsof -i", "Lists open network connections"},
			},
		},
		Exercises: []Exercise{
			{
				Instruction:     "Show interactive process monitor",
				ExpectedCommand: "htop",
				Hint:            "Use htop for interactive process monitoring",
			},
			{
				Instruction:     "Display virtual memory statistics",
				ExpectedCommand: "vmstat",
				Hint:            "Use vmstat to see memory and system stats",
			},
		},
	},
	{
		ID:            15,
		Title:         "Advanced Networking",
		Description:   "Advanced network configuration and troubleshooting",
		Commands:      []string{"netstat", "ss", "nmap", "tcpdump", "iptables"},
		Points:        140,
		EstimatedTime: "26 min",
		Tutorial: Tutorial{
			Title:   "Network Administration",
			Content: "Learn advanced networking commands for configuration, monitoring, and security management.",
			Why:     "Network administration skills are crucial for server management, security, and troubleshooting connectivity issues. These tools are essential for network engineers and system administrators.",
			Examples: []Example{
				{"netstat -tuln", "Shows listening ports and connections"},
				{"ss -tulpn", "Modern replacement for netstat with process info"},
				{"nmap -sn 192.168.1.0/24", "Scans network for active hosts"},
				{"tcpdump -i eth0", "Captures network packets on eth0 interface"},
				{"iptables -L", "Lists current firewall rules"},
			},
		},
		Exercises: []Exercise{
			{
				Instruction:     "Show all listening network ports",
				ExpectedCommand: "netstat -tuln",
				Hint:            "Use netstat -tuln to see listening ports",
			},
			{
				Instruction:     "Show network connections with process information",
				ExpectedCommand: "ss -tulpn",
				Hint:            "Use ss -tulpn for detailed connection info",
			},
		},
	},
}
